package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/segment"
)

// ResponseRepo is the view-model behind response screens: the admin's list of
// everything submitted, and the submit flow for one template.
type ResponseRepo struct {
	client *api.Client
}

func NewResponseRepo(client *api.Client) *ResponseRepo {
	return &ResponseRepo{client: client}
}

// ListAll fetches every submitted response. Admin only.
func (r *ResponseRepo) ListAll(ctx context.Context) ([]model.FeedbackResponse, error) {
	var responses []model.FeedbackResponse
	if err := r.client.Do(ctx, http.MethodGet, "/api/feedback/responses", nil, true, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

type submitInput struct {
	TemplateID string   `validate:"notblank"`
	Answers    []string `validate:"min=1,dive,notblank"`
	Rating     int      `validate:"min=1,max=5"`
}

// Submit posts one response for template. Every question must have a
// non-blank answer and the rating must sit in [1,5]; both are checked before
// any network call. The answer count must match the template's question
// count.
func (r *ResponseRepo) Submit(ctx context.Context, template model.FeedbackTemplate, answers []string, rating int) error {
	in := submitInput{TemplateID: template.ID, Answers: answers, Rating: rating}
	if err := validate.Struct(in); err != nil {
		switch firstField(err) {
		case "TemplateID":
			return &api.ValidationError{Message: "feedback template is required"}
		case "Rating":
			return &api.ValidationError{Message: "rating must be between 1 and 5"}
		default:
			return &api.ValidationError{Message: "please answer all questions"}
		}
	}
	if questionCount := len(template.Questions()); len(answers) != questionCount {
		return &api.ValidationError{
			Message: fmt.Sprintf("expected %d answers, got %d", questionCount, len(answers)),
		}
	}

	body := map[string]interface{}{
		"templateId": template.ID,
		"answer":     segment.Join(answers),
		"rating":     rating,
	}
	return r.client.Do(ctx, http.MethodPost, "/api/feedback/submit", body, true, nil)
}
