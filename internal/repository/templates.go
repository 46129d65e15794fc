package repository

import (
	"context"
	"net/http"
	"strings"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/segment"
)

// TemplateRepo is the view-model behind the template screens: list what the
// current role may see, create, delete. Every mutation is expected to be
// followed by a fresh ListForRole; the server stays the source of truth.
type TemplateRepo struct {
	client *api.Client
}

func NewTemplateRepo(client *api.Client) *TemplateRepo {
	return &TemplateRepo{client: client}
}

// ListForRole fetches all templates for admins and only the active ones for
// regular users. Ordering is whatever the server returned.
func (r *TemplateRepo) ListForRole(ctx context.Context, role model.Role) ([]model.FeedbackTemplate, error) {
	path := "/api/feedback/active"
	if role == model.RoleAdmin {
		path = "/api/feedback/templates"
	}
	var templates []model.FeedbackTemplate
	if err := r.client.Do(ctx, http.MethodGet, path, nil, true, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Get finds one template by id in the role-appropriate list.
func (r *TemplateRepo) Get(ctx context.Context, role model.Role, id string) (model.FeedbackTemplate, error) {
	templates, err := r.ListForRole(ctx, role)
	if err != nil {
		return model.FeedbackTemplate{}, err
	}
	for _, template := range templates {
		if template.ID == id {
			return template, nil
		}
	}
	return model.FeedbackTemplate{}, &api.ValidationError{Message: "feedback template not found"}
}

type createTemplateInput struct {
	Title     string   `validate:"notblank"`
	Questions []string `validate:"min=1"`
}

// Create validates locally, joins the questions into the wire field and posts
// the new template. Blank questions are dropped before validation.
func (r *TemplateRepo) Create(ctx context.Context, title string, questions []string) (model.FeedbackTemplate, error) {
	kept := make([]string, 0, len(questions))
	for _, question := range questions {
		if strings.TrimSpace(question) != "" {
			kept = append(kept, question)
		}
	}
	if err := validate.Struct(createTemplateInput{Title: title, Questions: kept}); err != nil {
		return model.FeedbackTemplate{}, &api.ValidationError{Message: "title and at least one question are required"}
	}

	body := map[string]string{
		"title":    title,
		"question": segment.Join(kept),
	}
	var created model.FeedbackTemplate
	if err := r.client.Do(ctx, http.MethodPost, "/api/feedback/templates", body, true, &created); err != nil {
		return model.FeedbackTemplate{}, err
	}
	return created, nil
}

// Delete removes a template. The caller is responsible for confirming with
// the user first.
func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, "/api/feedback/templates/"+id, nil, true, nil)
}
