package repository

import (
	"context"
	"net/http"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/session"
)

// AccountRepo handles the session lifecycle: login, logout and the password
// reset flows that run without a session.
type AccountRepo struct {
	client  *api.Client
	session *session.Store
}

func NewAccountRepo(client *api.Client, sess *session.Store) *AccountRepo {
	return &AccountRepo{client: client, session: sess}
}

type loginInput struct {
	Email    string `validate:"notblank,email"`
	Password string `validate:"notblank"`
}

// Login exchanges credentials for a bearer token and persists the session.
func (a *AccountRepo) Login(ctx context.Context, email, password string) (model.User, error) {
	if err := validate.Struct(loginInput{Email: email, Password: password}); err != nil {
		return model.User{}, &api.ValidationError{Message: "email and password are required"}
	}

	var result struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := a.client.Do(ctx, http.MethodPost, "/api/login", body, false, &result); err != nil {
		return model.User{}, err
	}
	if err := a.session.Save(session.Session{Token: result.Token, User: result.User}); err != nil {
		return model.User{}, err
	}
	return result.User, nil
}

// Logout clears the persisted session.
func (a *AccountRepo) Logout() error {
	return a.session.Clear()
}

// ForgotPassword asks the server to mail a reset link. The server answers the
// same way whether or not the address exists.
func (a *AccountRepo) ForgotPassword(ctx context.Context, email string) error {
	if err := validate.Var(email, "notblank,email"); err != nil {
		return &api.ValidationError{Message: "a valid email address is required"}
	}
	body := map[string]string{"email": email}
	return a.client.Do(ctx, http.MethodPost, "/api/forgot-password", body, false, nil)
}

// ResetPassword consumes a reset link's userId+token pair.
func (a *AccountRepo) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	if userID == "" || token == "" {
		return &api.ValidationError{Message: "invalid reset link"}
	}
	if err := validate.Var(newPassword, "notblank"); err != nil {
		return &api.ValidationError{Message: "a new password is required"}
	}
	body := map[string]string{"userId": userID, "token": token, "newPassword": newPassword}
	return a.client.Do(ctx, http.MethodPost, "/api/reset-password", body, false, nil)
}
