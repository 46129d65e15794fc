package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/repository"
)

func TestCreateTemplateRejectsLocally(t *testing.T) {
	client, _, calls := countingClient(t)
	templates := repository.NewTemplateRepo(client)
	ctx := context.Background()

	cases := []struct {
		name      string
		title     string
		questions []string
	}{
		{"empty title", "", []string{"How was it?"}},
		{"blank title", "   ", []string{"How was it?"}},
		{"no questions", "Survey", nil},
		{"all blank questions", "Survey", []string{"", "  ", "\n"}},
	}
	for _, tc := range cases {
		_, err := templates.Create(ctx, tc.title, tc.questions)
		var verr *api.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no network calls, got %d", calls.Load())
	}
}

func TestCreateTemplateJoinsQuestions(t *testing.T) {
	_, baseURL, _, _ := startStub(t)
	client, _ := login(t, baseURL, "admin@demo.local")
	templates := repository.NewTemplateRepo(client)
	ctx := context.Background()

	created, err := templates.Create(ctx, "Course Survey", []string{"How was it?", "Any comments?"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.Question != "How was it?\n\nAny comments?" {
		t.Fatalf("unexpected wire question: %q", created.Question)
	}

	// The detail view splits it back into exactly two entries.
	fetched, err := templates.Get(ctx, model.RoleAdmin, created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	questions := fetched.Questions()
	if len(questions) != 2 || questions[0] != "How was it?" || questions[1] != "Any comments?" {
		t.Fatalf("unexpected questions: %q", questions)
	}
}

func TestListForRoleFiltersInactive(t *testing.T) {
	srv, baseURL, _, _ := startStub(t)
	srv.SeedTemplate("Active one", "Q1", true)
	srv.SeedTemplate("Retired one", "Q2", false)

	adminClient, _ := login(t, baseURL, "admin@demo.local")
	userClient, _ := login(t, baseURL, "bob@demo.local")
	ctx := context.Background()

	adminList, err := repository.NewTemplateRepo(adminClient).ListForRole(ctx, model.RoleAdmin)
	if err != nil {
		t.Fatalf("admin list error: %v", err)
	}
	if len(adminList) != 2 {
		t.Fatalf("expected admin to see 2 templates, got %d", len(adminList))
	}

	userList, err := repository.NewTemplateRepo(userClient).ListForRole(ctx, model.RoleUser)
	if err != nil {
		t.Fatalf("user list error: %v", err)
	}
	if len(userList) != 1 || userList[0].Title != "Active one" {
		t.Fatalf("expected user to see only the active template, got %+v", userList)
	}
}

func TestDeleteTemplateCascades(t *testing.T) {
	_, baseURL, _, _ := startStub(t)
	adminClient, _ := login(t, baseURL, "admin@demo.local")
	userClient, _ := login(t, baseURL, "bob@demo.local")
	ctx := context.Background()

	templates := repository.NewTemplateRepo(adminClient)
	created, err := templates.Create(ctx, "Doomed", []string{"Q?"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	userTemplates := repository.NewTemplateRepo(userClient)
	userResponses := repository.NewResponseRepo(userClient)
	target, err := userTemplates.Get(ctx, model.RoleUser, created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := userResponses.Submit(ctx, target, []string{"fine"}, 4); err != nil {
			t.Fatalf("submit %d error: %v", i, err)
		}
	}

	if err := templates.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	list, err := templates.ListForRole(ctx, model.RoleAdmin)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, template := range list {
		if template.ID == created.ID {
			t.Fatalf("deleted template still listed")
		}
	}

	responses, err := repository.NewResponseRepo(adminClient).ListAll(ctx)
	if err != nil {
		t.Fatalf("responses list error: %v", err)
	}
	for _, response := range responses {
		if response.TemplateID == created.ID {
			t.Fatalf("responses for deleted template still listed")
		}
	}
}

func TestDeleteUnknownTemplate(t *testing.T) {
	_, baseURL, _, _ := startStub(t)
	client, _ := login(t, baseURL, "admin@demo.local")

	err := repository.NewTemplateRepo(client).Delete(context.Background(), "no-such-id")
	var serverErr *api.ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if serverErr.Status != 404 {
		t.Fatalf("expected 404, got %d", serverErr.Status)
	}
}
