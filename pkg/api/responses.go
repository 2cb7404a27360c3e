package api

import (
	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/pkg/database"
)

// AdminResponse is returned by the admin session endpoints.
type AdminResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

func newAdminResponse(a *ent.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, Email: a.Email}
}

// QuestionResponse mirrors one question of the pool.
type QuestionResponse struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

func newQuestionResponse(q *ent.Question) QuestionResponse {
	return QuestionResponse{QuestionID: q.ID, Question: q.Question, Answer: q.Answer}
}

// QuestionListResponse is returned by GET /game/list_questions.
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// StatusResponse acknowledges an operation that has no payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
