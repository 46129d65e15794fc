package model

import (
	"time"

	"github.com/Jasvanth78/feedbackforntend/internal/segment"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the two roles the API knows about.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Count     UserCount `json:"_count"`
}

// UserCount carries the derived counters the user list endpoint attaches.
type UserCount struct {
	FeedbackResponses int `json:"feedbackResponses"`
}

type FeedbackTemplate struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Question  string        `json:"question"`
	IsActive  bool          `json:"isActive"`
	CreatedAt time.Time     `json:"createdAt"`
	Count     TemplateCount `json:"_count"`
}

type TemplateCount struct {
	Responses int `json:"responses"`
}

// Questions unpacks the joined question field into its ordered sub-questions.
func (t FeedbackTemplate) Questions() []string {
	return segment.Split(t.Question)
}

type FeedbackResponse struct {
	ID         string            `json:"id"`
	TemplateID string            `json:"templateId"`
	UserID     string            `json:"userId"`
	Answer     string            `json:"answer"`
	Rating     int               `json:"rating"`
	CreatedAt  time.Time         `json:"createdAt"`
	Template   *FeedbackTemplate `json:"template,omitempty"`
	User       *User             `json:"user,omitempty"`
}

// Answers unpacks the joined answer field into its ordered sub-answers.
func (r FeedbackResponse) Answers() []string {
	return segment.Split(r.Answer)
}
