package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/quiz"
	"github.com/xeipuuv/gojsonschema"
)

const counselorSystemPrompt = "You are an expert career counselor specializing in trade schools and vocational education. " +
	"Provide detailed, personalized analysis that helps students understand their career path options. " +
	"Your response MUST be valid JSON."

// modelResponseSchema is the minimum shape accepted from the model. Extra keys
// are ignored and an empty recommendation list is allowed.
const modelResponseSchema = `{
  "type": "object",
  "required": ["analysis", "recommendedSchools"],
  "properties": {
    "analysis": {"type": "string", "minLength": 1},
    "recommendedSchools": {
      "type": "array",
      "items": {"type": "object"}
    }
  }
}`

var modelResponseLoader = gojsonschema.NewStringLoader(modelResponseSchema)

// modelMatchLimit caps the model's list at the count the prompt asks for.
const modelMatchLimit = 5

func buildRecommendationPrompt(answers quiz.Answers, schools []dto.School) (string, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("failed to encode answers: %w", err)
	}
	schoolsJSON, err := json.Marshal(schools)
	if err != nil {
		return "", fmt.Errorf("failed to encode schools: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Analyze the following student's quiz responses and match them with appropriate trade schools:\n\n")
	sb.WriteString("Student Quiz Answers: ")
	sb.Write(answersJSON)
	sb.WriteString("\n\nAvailable Schools: ")
	sb.Write(schoolsJSON)
	sb.WriteString("\n\nProvide a comprehensive JSON response with these two keys:\n\n")
	sb.WriteString("1. \"analysis\" - Write a detailed career path analysis (150-200 words) that:\n")
	sb.WriteString("   - Interprets what their quiz answers reveal about their preferences, work style, and career goals\n")
	sb.WriteString("   - Explains what types of careers would be suitable based on their responses\n")
	sb.WriteString("   - Discusses how their preferences align with trade school opportunities\n")
	sb.WriteString("   - Be specific, personal, and insightful\n\n")
	sb.WriteString("2. \"recommendedSchools\" - Array of 3-5 best matching schools. For EACH school:\n")
	sb.WriteString("   - Include ALL original school properties: id, name, pathway, industries, programLength, cost, housing, website, location\n")
	sb.WriteString("   - Add a \"reasoning\" property (60-100 words) that explains why this school matches their preferences, ")
	sb.WriteString("how its programs align with their quiz answers, and which features (cost, location, duration) make it a good fit\n\n")
	sb.WriteString("CRITICAL: Return complete school objects with all original data fields intact, just add the reasoning property.")
	return sb.String(), nil
}

// stripCodeFence removes a surrounding Markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// drop the language tag line, e.g. ```json
		if tag := strings.TrimSpace(s[:nl]); tag == "" || !strings.ContainsAny(tag, "{[") {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseModelResponse validates the reply and converts it to a result. Each
// recommended school is normalized like a catalog row.
func parseModelResponse(raw string) (*dto.RecommendationResult, error) {
	body := stripCodeFence(raw)

	res, err := gojsonschema.Validate(modelResponseLoader, gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("model response failed validation: %s", strings.Join(msgs, "; "))
	}

	var parsed struct {
		Analysis           string           `json:"analysis"`
		RecommendedSchools []map[string]any `json:"recommendedSchools"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	items := parsed.RecommendedSchools
	if len(items) > modelMatchLimit {
		items = items[:modelMatchLimit]
	}
	matches := make([]dto.Match, 0, len(items))
	for _, item := range items {
		matches = append(matches, dto.Match{
			School:    NormalizeSchool(scalarText(item["id"]), item),
			Reasoning: strings.TrimSpace(scalarText(item["reasoning"])),
		})
	}
	return &dto.RecommendationResult{Analysis: parsed.Analysis, Matches: matches}, nil
}
