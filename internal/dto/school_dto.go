package dto

// School is a normalized catalog row. Tag fields are never nil once
// normalized.
type School struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Pathway       []string `json:"pathway"`
	Industries    []string `json:"industries"`
	ProgramLength []string `json:"programLength"`
	Cost          string   `json:"cost"`
	Housing       string   `json:"housing"`
	Website       string   `json:"website"`
	Location      string   `json:"location"`
}

// Match is a recommended school. Score is only set by the keyword scorer.
type Match struct {
	School
	Reasoning string `json:"reasoning"`
	Score     *int   `json:"score,omitempty"`
}

type RecommendationResult struct {
	Analysis string  `json:"analysis"`
	Matches  []Match `json:"matches"`
}
