package dto

import (
	"encoding/json"
	"time"

	"github.com/pathway-infinity/pathway-api/internal/quiz"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserSummary is the owner block embedded in saved results.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SignupResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SchoolsResponse struct {
	Schools []School `json:"schools"`
}

type QuestionsResponse struct {
	Questions []quiz.Question `json:"questions"`
}

type AnalyzeResponse struct {
	Matches  []Match `json:"matches"`
	Analysis string  `json:"analysis"`
	Source   string  `json:"source"`
}

type SavedResultResponse struct {
	ID      string          `json:"id"`
	UserID  string          `json:"userId"`
	Results json.RawMessage `json:"results" swaggertype:"object"`
	SavedAt time.Time       `json:"savedAt"`
	User    UserSummary     `json:"user"`
}

// HealthResponse reports "ok" or "unreachable" per dependency. Redis is
// "disabled" when not configured.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
