package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/repository"
)

func TestSubmitRejectsLocally(t *testing.T) {
	client, _, calls := countingClient(t)
	responses := repository.NewResponseRepo(client)
	ctx := context.Background()
	template := model.FeedbackTemplate{ID: "t1", Question: "How was it?\n\nAny comments?"}

	cases := []struct {
		name    string
		answers []string
		rating  int
	}{
		{"blank answer", []string{"fine", "   "}, 4},
		{"no answers", nil, 4},
		{"rating too high", []string{"fine", "none"}, 6},
		{"rating too low", []string{"fine", "none"}, 0},
		{"answer count mismatch", []string{"fine"}, 4},
	}
	for _, tc := range cases {
		err := responses.Submit(ctx, template, tc.answers, tc.rating)
		var verr *api.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no network calls, got %d", calls.Load())
	}
}

func TestSubmitBoundaryRatings(t *testing.T) {
	srv, baseURL, _, user := startStub(t)
	template := srv.SeedTemplate("Quick check", "Happy?", true)
	client, _ := login(t, baseURL, "bob@demo.local")
	ctx := context.Background()

	responses := repository.NewResponseRepo(client)
	target, err := repository.NewTemplateRepo(client).Get(ctx, model.RoleUser, template.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	// 1 and 5 are both acceptable boundary values.
	if err := responses.Submit(ctx, target, []string{"barely"}, 1); err != nil {
		t.Fatalf("rating 1 rejected: %v", err)
	}
	if err := responses.Submit(ctx, target, []string{"very"}, 5); err != nil {
		t.Fatalf("rating 5 rejected: %v", err)
	}

	adminClient, _ := login(t, baseURL, "admin@demo.local")
	all, err := repository.NewResponseRepo(adminClient).ListAll(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(all))
	}
	for _, response := range all {
		if response.UserID != user.ID {
			t.Fatalf("response attributed to wrong user: %+v", response)
		}
		if response.Template == nil || response.Template.Title != "Quick check" {
			t.Fatalf("expected nested template on response: %+v", response)
		}
		if response.User == nil || response.User.Email != "bob@demo.local" {
			t.Fatalf("expected nested user on response: %+v", response)
		}
	}
}

func TestSubmitJoinsAnswers(t *testing.T) {
	srv, baseURL, _, _ := startStub(t)
	template := srv.SeedTemplate("Course Survey", "How was it?\n\nAny comments?", true)
	client, _ := login(t, baseURL, "bob@demo.local")
	ctx := context.Background()

	target, err := repository.NewTemplateRepo(client).Get(ctx, model.RoleUser, template.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if err := repository.NewResponseRepo(client).Submit(ctx, target, []string{"Great", "Nothing else"}, 5); err != nil {
		t.Fatalf("submit error: %v", err)
	}

	adminClient, _ := login(t, baseURL, "admin@demo.local")
	all, err := repository.NewResponseRepo(adminClient).ListAll(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 response, got %d", len(all))
	}
	if all[0].Answer != "Great\n\nNothing else" {
		t.Fatalf("unexpected wire answer: %q", all[0].Answer)
	}
	answers := all[0].Answers()
	if len(answers) != 2 || answers[0] != "Great" {
		t.Fatalf("unexpected answers: %q", answers)
	}
}

func TestListAllRequiresAdmin(t *testing.T) {
	_, baseURL, _, _ := startStub(t)
	client, _ := login(t, baseURL, "bob@demo.local")

	_, err := repository.NewResponseRepo(client).ListAll(context.Background())
	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}
