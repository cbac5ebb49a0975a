package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/quiz"
)

const (
	fallbackMatchLimit     = 5
	fallbackReasonLimit    = 2
	defaultFallbackReason  = "offers quality programs that match your career goals"
	pathwayWeight          = 3
	industryWeight         = 2
	programLengthWeight    = 1
	locationWeight         = 1
	unspecifiedAnswerValue = "unspecified"
)

// KeywordRecommend ranks schools by keyword overlap with the answer values.
// It never fails and needs no external service.
func KeywordRecommend(answers quiz.Answers, schools []dto.School) dto.RecommendationResult {
	values := answers.Values()
	preferences := strings.ToLower(strings.Join(values, " "))

	matches := make([]dto.Match, 0, len(schools))
	for _, school := range schools {
		matches = append(matches, scoreSchool(school, preferences))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return *matches[i].Score > *matches[j].Score
	})
	if len(matches) > fallbackMatchLimit {
		matches = matches[:fallbackMatchLimit]
	}

	return dto.RecommendationResult{
		Analysis: fallbackAnalysis(values),
		Matches:  matches,
	}
}

func scoreSchool(school dto.School, preferences string) dto.Match {
	score := 0
	var reasons []string

	for _, p := range school.Pathway {
		if tag := strings.ToLower(p); tag != "" && strings.Contains(preferences, tag) {
			score += pathwayWeight
			reasons = append(reasons, "matches your interest in "+tag)
		}
	}
	for _, ind := range school.Industries {
		if tag := strings.ToLower(ind); tag != "" && strings.Contains(preferences, tag) {
			score += industryWeight
			reasons = append(reasons, "aligns with "+tag+" field")
		}
	}
	wantsQuick := strings.Contains(preferences, "quick")
	for _, l := range school.ProgramLength {
		tag := strings.ToLower(l)
		if tag == "" {
			continue
		}
		if strings.Contains(preferences, tag) || (wantsQuick && strings.Contains(tag, "month")) {
			score += programLengthWeight
			reasons = append(reasons, "fits your preferred timeframe")
		}
	}
	city := strings.TrimSpace(strings.ToLower(strings.SplitN(school.Location, ",", 2)[0]))
	if city != "" && strings.Contains(preferences, city) {
		score += locationWeight
		reasons = append(reasons, "located in your preferred area")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, defaultFallbackReason)
	}
	if len(reasons) > fallbackReasonLimit {
		reasons = reasons[:fallbackReasonLimit]
	}

	s := score
	return dto.Match{
		School:    school,
		Reasoning: strings.Join(reasons, " and "),
		Score:     &s,
	}
}

func fallbackAnalysis(values []string) string {
	v := make([]any, 6)
	for i := range v {
		v[i] = unspecifiedAnswerValue
		if i < len(values) && strings.TrimSpace(values[i]) != "" {
			v[i] = values[i]
		}
	}
	return fmt.Sprintf("Based on your quiz responses, you have indicated a preference for %s work environments "+
		"and %s activities. Your answers suggest you value %s approaches to learning and prioritize %s in your "+
		"career decisions. With %s technical skills and seeking %s program durations, you appear well-suited for "+
		"trade school programs that offer hands-on training and practical career preparation. These preferences "+
		"suggest you would thrive in vocational education settings that provide structured learning paths, "+
		"real-world skill development, and direct pathways to stable employment. The schools recommended below "+
		"have been carefully selected to align with your work style preferences, career goals, and educational "+
		"needs. Each offers programs that match your interests while providing the support and flexibility "+
		"you're looking for in your career education journey.", v...)
}
