package dto

import (
	"encoding/json"

	"github.com/pathway-infinity/pathway-api/internal/quiz"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"max=200"`
	Email    string `json:"email" binding:"max=320"`
	Password string `json:"password" binding:"max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"max=320"`
	Password string `json:"password" binding:"max=200"`
}

// SchoolSearchQuery is bound from the query string of GET /schools.
type SchoolSearchQuery struct {
	Search string `form:"search" binding:"max=200"`
}

// SchoolQueryRequest selects schools either by quiz answers or by explicit
// filters. Answers win when both are present.
type SchoolQueryRequest struct {
	Answers quiz.Answers   `json:"answers"`
	Filters *SchoolFilters `json:"filters"`
}

type SchoolFilters struct {
	Location   string     `json:"location"`
	Pathway    string     `json:"pathway"`
	Industries string     `json:"industries"`
	CostRange  *CostRange `json:"costRange"`
}

type CostRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// AnalyzeRequest carries the answers and the candidate schools. Schools are
// kept loosely typed and normalized server side.
type AnalyzeRequest struct {
	Answers quiz.Answers     `json:"answers"`
	Schools []map[string]any `json:"schools"`
}

type RecommendRequest struct {
	Answers quiz.Answers `json:"answers"`
}

type SaveResultRequest struct {
	Results json.RawMessage `json:"results" swaggertype:"object"`
}
