package repository

import (
	"context"
	"net/http"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/session"
)

// UserDirectory is the view-model behind the user management screen. The
// acting user's own row is off limits for role changes and deletion; the
// server enforces that too, this guard just keeps the mistake local.
type UserDirectory struct {
	client  *api.Client
	session *session.Store
}

func NewUserDirectory(client *api.Client, sess *session.Store) *UserDirectory {
	return &UserDirectory{client: client, session: sess}
}

// List fetches all users with their response counts. Admin only.
func (d *UserDirectory) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := d.client.Do(ctx, http.MethodGet, "/api/users", nil, true, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetRole promotes or demotes a user.
func (d *UserDirectory) SetRole(ctx context.Context, userID string, role model.Role) error {
	if !role.Valid() {
		return &api.ValidationError{Message: `role must be "USER" or "ADMIN"`}
	}
	if err := d.guardSelf(userID, "you cannot change your own role"); err != nil {
		return err
	}
	body := map[string]string{"role": string(role)}
	return d.client.Do(ctx, http.MethodPatch, "/api/users/"+userID+"/role", body, true, nil)
}

// Delete removes a user and, server-side, everything they submitted. The
// caller is responsible for confirming with the user first.
func (d *UserDirectory) Delete(ctx context.Context, userID string) error {
	if err := d.guardSelf(userID, "you cannot delete your own account"); err != nil {
		return err
	}
	return d.client.Do(ctx, http.MethodDelete, "/api/users/"+userID, nil, true, nil)
}

func (d *UserDirectory) guardSelf(userID, message string) error {
	if sess, ok := d.session.Current(); ok && sess.User.ID == userID {
		return &api.ValidationError{Message: message}
	}
	return nil
}
