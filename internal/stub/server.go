package stub

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jasvanth78/feedbackforntend/internal/auth"
	"github.com/Jasvanth78/feedbackforntend/internal/config"
	"github.com/Jasvanth78/feedbackforntend/internal/crypto"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
)

// Server is an in-memory double of the feedback API, implementing the same
// routes, auth rules and error bodies. It backs the repository tests and the
// feedback-stub binary; it makes no durability claims.
type Server struct {
	cfg config.Config

	// OnResetToken, when set, observes every issued reset token. The stub has
	// no mailer; the feedback-stub binary logs the link instead.
	OnResetToken func(email, userID, token string)

	mu          sync.Mutex
	users       []*userRecord
	templates   []*model.FeedbackTemplate
	responses   []*model.FeedbackResponse
	resetTokens map[string]resetToken
}

type userRecord struct {
	User         model.User
	PasswordHash string
}

type resetToken struct {
	hash string
	// raw is kept so the stub can hand the link out; a real server only
	// stores the hash.
	raw string
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg:         cfg,
		resetTokens: make(map[string]resetToken),
	}
}

// SeedUser registers an account directly, bypassing the (out of scope)
// registration flow.
func (s *Server) SeedUser(name, email, password string, role model.Role) (model.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user := model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.users = append(s.users, &userRecord{User: user, PasswordHash: hash})
	return user, nil
}

// SeedTemplate inserts a template directly, optionally inactive; there is no
// API route that deactivates one.
func (s *Server) SeedTemplate(title, question string, active bool) model.FeedbackTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	template := model.FeedbackTemplate{
		ID:        uuid.NewString(),
		Title:     title,
		Question:  question,
		IsActive:  active,
		CreatedAt: time.Now().UTC(),
	}
	s.templates = append(s.templates, &template)
	return template
}

// ResetTokenFor returns the outstanding reset token for email, if any.
func (s *Server) ResetTokenFor(email string) (userID, token string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.findUserByEmail(email)
	if record == nil {
		return "", "", false
	}
	pending, ok := s.resetTokens[record.User.ID]
	if !ok {
		return "", "", false
	}
	return record.User.ID, pending.raw, true
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/login", s.handleLogin)
	r.Post("/api/forgot-password", s.handleForgotPassword)
	r.Post("/api/reset-password", s.handleResetPassword)

	r.With(s.authMiddleware).Get("/api/feedback/active", s.handleListActiveTemplates)
	r.With(s.authMiddleware).Post("/api/feedback/submit", s.handleSubmitResponse)
	r.With(s.authMiddleware, s.adminOnly).Get("/api/feedback/templates", s.handleListTemplates)
	r.With(s.authMiddleware, s.adminOnly).Post("/api/feedback/templates", s.handleCreateTemplate)
	r.With(s.authMiddleware, s.adminOnly).Delete("/api/feedback/templates/{templateId}", s.handleDeleteTemplate)
	r.With(s.authMiddleware, s.adminOnly).Get("/api/feedback/responses", s.handleListResponses)
	r.With(s.authMiddleware, s.adminOnly).Get("/api/users", s.handleListUsers)
	r.With(s.authMiddleware, s.adminOnly).Patch("/api/users/{userId}/role", s.handleSetRole)
	r.With(s.authMiddleware, s.adminOnly).Delete("/api/users/{userId}", s.handleDeleteUser)

	return r
}

// Auth

type claimsKey struct{}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		claims, err := auth.ParseToken(s.cfg.JWTSecret, token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := r.Context()
		next.ServeHTTP(w, r.WithContext(contextWithClaims(ctx, claims)))
	})
}

func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record := s.actingUser(r)
		if record == nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		// The stored role decides, not the token: a demotion takes effect
		// even while the old token is still valid.
		if record.User.Role != model.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin_only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) actingUser(r *http.Request) *userRecord {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUserByID(claims.UserID)
}

// Account handlers

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.findUserByEmail(req.Email)
	if record == nil || crypto.CheckPassword(record.PasswordHash, req.Password) != nil {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token, err := auth.NewAccessToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenTTL, auth.Claims{
		UserID: record.User.ID,
		Role:   record.User.Role,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  s.withUserCount(record.User),
	})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	var issuedFor string
	var issued string
	s.mu.Lock()
	if record := s.findUserByEmail(req.Email); record != nil {
		if raw, err := crypto.NewResetToken(); err == nil {
			s.resetTokens[record.User.ID] = resetToken{hash: crypto.HashToken(raw), raw: raw}
			issuedFor = record.User.ID
			issued = raw
		}
	}
	s.mu.Unlock()
	if issued != "" && s.OnResetToken != nil {
		s.OnResetToken(req.Email, issuedFor, issued)
	}

	// Same answer whether or not the address exists.
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "if that email exists, a reset link has been sent",
	})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string `json:"userId"`
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pending, ok := s.resetTokens[req.UserID]
	if !ok || pending.hash != crypto.HashToken(req.Token) {
		// The reset flow reports through "message", not "error".
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid or expired reset token"})
		return
	}
	record := s.findUserByID(req.UserID)
	if record == nil {
		writeError(w, http.StatusNotFound, "user_not_found")
		return
	}
	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "hash_error")
		return
	}
	record.PasswordHash = hash
	delete(s.resetTokens, req.UserID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "password reset"})
}

// Template handlers

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FeedbackTemplate, 0, len(s.templates))
	for _, template := range s.templates {
		out = append(out, s.withTemplateCount(*template))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListActiveTemplates(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FeedbackTemplate, 0, len(s.templates))
	for _, template := range s.templates {
		if !template.IsActive {
			continue
		}
		out = append(out, s.withTemplateCount(*template))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Question string `json:"question"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "title_and_question_required")
		return
	}

	s.mu.Lock()
	template := model.FeedbackTemplate{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Question:  req.Question,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.templates = append(s.templates, &template)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, template)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateId")

	s.mu.Lock()
	defer s.mu.Unlock()
	index := -1
	for i, template := range s.templates {
		if template.ID == templateID {
			index = i
			break
		}
	}
	if index < 0 {
		writeError(w, http.StatusNotFound, "template_not_found")
		return
	}
	s.templates = append(s.templates[:index], s.templates[index+1:]...)

	// Deleting a template takes its responses with it.
	kept := s.responses[:0]
	for _, response := range s.responses {
		if response.TemplateID != templateID {
			kept = append(kept, response)
		}
	}
	s.responses = kept

	writeJSON(w, http.StatusOK, map[string]string{"message": "template deleted"})
}

// Response handlers

func (s *Server) handleListResponses(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FeedbackResponse, 0, len(s.responses))
	for _, response := range s.responses {
		entry := *response
		if template := s.findTemplate(response.TemplateID); template != nil {
			copied := *template
			entry.Template = &copied
		}
		if record := s.findUserByID(response.UserID); record != nil {
			user := record.User
			entry.User = &user
		}
		out = append(out, entry)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	var req struct {
		TemplateID string `json:"templateId"`
		Answer     string `json:"answer"`
		Rating     int    `json:"rating"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if strings.TrimSpace(req.Answer) == "" {
		writeError(w, http.StatusBadRequest, "answer_required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "invalid_rating")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	template := s.findTemplate(req.TemplateID)
	if template == nil || !template.IsActive {
		writeError(w, http.StatusNotFound, "template_not_found")
		return
	}
	response := model.FeedbackResponse{
		ID:         uuid.NewString(),
		TemplateID: req.TemplateID,
		UserID:     claims.UserID,
		Answer:     req.Answer,
		Rating:     req.Rating,
		CreatedAt:  time.Now().UTC(),
	}
	s.responses = append(s.responses, &response)
	writeJSON(w, http.StatusCreated, response)
}

// User handlers

func (s *Server) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, record := range s.users {
		out = append(out, s.withUserCount(record.User))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req struct {
		Role model.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if !req.Role.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_role")
		return
	}
	if claims := claimsFromContext(r.Context()); claims != nil && claims.UserID == userID {
		writeError(w, http.StatusForbidden, "cannot_modify_self")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.findUserByID(userID)
	if record == nil {
		writeError(w, http.StatusNotFound, "user_not_found")
		return
	}
	record.User.Role = req.Role
	writeJSON(w, http.StatusOK, s.withUserCount(record.User))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	if claims := claimsFromContext(r.Context()); claims != nil && claims.UserID == userID {
		writeError(w, http.StatusForbidden, "cannot_modify_self")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index := -1
	for i, record := range s.users {
		if record.User.ID == userID {
			index = i
			break
		}
	}
	if index < 0 {
		writeError(w, http.StatusNotFound, "user_not_found")
		return
	}
	s.users = append(s.users[:index], s.users[index+1:]...)

	// Deleting a user cascades to their responses.
	kept := s.responses[:0]
	for _, response := range s.responses {
		if response.UserID != userID {
			kept = append(kept, response)
		}
	}
	s.responses = kept
	delete(s.resetTokens, userID)

	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// Lookups; callers hold s.mu.

func (s *Server) findUserByID(id string) *userRecord {
	for _, record := range s.users {
		if record.User.ID == id {
			return record
		}
	}
	return nil
}

func (s *Server) findUserByEmail(email string) *userRecord {
	for _, record := range s.users {
		if strings.EqualFold(record.User.Email, email) {
			return record
		}
	}
	return nil
}

func (s *Server) findTemplate(id string) *model.FeedbackTemplate {
	for _, template := range s.templates {
		if template.ID == id {
			return template
		}
	}
	return nil
}

func (s *Server) withTemplateCount(template model.FeedbackTemplate) model.FeedbackTemplate {
	count := 0
	for _, response := range s.responses {
		if response.TemplateID == template.ID {
			count++
		}
	}
	template.Count = model.TemplateCount{Responses: count}
	return template
}

func (s *Server) withUserCount(user model.User) model.User {
	count := 0
	for _, response := range s.responses {
		if response.UserID == user.ID {
			count++
		}
	}
	user.Count = model.UserCount{FeedbackResponses: count}
	return user
}
