package main

import (
	"errors"
	"fmt"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/config"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/repository"
	"github.com/Jasvanth78/feedbackforntend/internal/session"
)

// env bundles the wired-up client side of one command invocation: config,
// session, API client and the repositories built on top.
type env struct {
	cfg       config.Config
	store     *session.Store
	client    *api.Client
	account   *repository.AccountRepo
	templates *repository.TemplateRepo
	responses *repository.ResponseRepo
	users     *repository.UserDirectory
}

func newEnv() (*env, error) {
	cfg := config.Load()
	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	client := api.NewClient(cfg, store)
	return &env{
		cfg:       cfg,
		store:     store,
		client:    client,
		account:   repository.NewAccountRepo(client, store),
		templates: repository.NewTemplateRepo(client),
		responses: repository.NewResponseRepo(client),
		users:     repository.NewUserDirectory(client, store),
	}, nil
}

var errNotLoggedIn = errors.New(`not logged in, run "feedbackctl login" first`)

// currentUser returns the logged-in user record from the session.
func (e *env) currentUser() (model.User, error) {
	sess, ok := e.store.Current()
	if !ok {
		return model.User{}, errNotLoggedIn
	}
	return sess.User, nil
}

// friendly rewraps repository errors into the short messages the commands
// print; the typed details stay available through errors.As.
func friendly(err error) error {
	if err == nil {
		return nil
	}
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return fmt.Errorf("not allowed: %s", authErr.Message)
	}
	var serverErr *api.ServerError
	if errors.As(err, &serverErr) {
		return fmt.Errorf("request failed: %s", serverErr.Message)
	}
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Errorf("cannot reach the server: %v", netErr.Err)
	}
	return err
}
