package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func school(name string, pathway, industries, length []string, location string) dto.School {
	return dto.School{
		ID: "rec" + name, Name: name,
		Pathway: pathway, Industries: industries, ProgramLength: length,
		Cost: CostPlaceholder, Location: location,
	}
}

func TestKeywordRecommendScoring(t *testing.T) {
	answers := quiz.Answers{"1": "Welding", "2": "construction", "3": "quick", "4": "Austin"}
	schools := []dto.School{
		school("Plain", []string{"Nursing"}, []string{"Healthcare"}, []string{"2 Years"}, "Boston, MA"),
		school("Weld", []string{"Welding"}, []string{"Construction"}, []string{"6 Months"}, "Austin, TX"),
		school("Build", nil, []string{"Construction"}, nil, ""),
	}

	got := KeywordRecommend(answers, schools)
	require.Len(t, got.Matches, 3)

	first := got.Matches[0]
	assert.Equal(t, "Weld", first.Name)
	require.NotNil(t, first.Score)
	assert.Equal(t, 3+2+1+1, *first.Score)
	assert.Equal(t, "matches your interest in welding and aligns with construction field", first.Reasoning)

	second := got.Matches[1]
	assert.Equal(t, "Build", second.Name)
	assert.Equal(t, 2, *second.Score)
	assert.Equal(t, "aligns with construction field", second.Reasoning)

	third := got.Matches[2]
	assert.Equal(t, "Plain", third.Name)
	assert.Equal(t, 0, *third.Score)
	assert.Equal(t, "offers quality programs that match your career goals", third.Reasoning)
}

func TestKeywordRecommendQuickMatchesMonthPrograms(t *testing.T) {
	schools := []dto.School{
		school("Months", nil, nil, []string{"9 MONTHS"}, ""),
		school("Years", nil, nil, []string{"2 Years"}, ""),
	}
	got := KeywordRecommend(quiz.Answers{"1": "I want quick training"}, schools)

	assert.Equal(t, "Months", got.Matches[0].Name)
	assert.Equal(t, 1, *got.Matches[0].Score)
	assert.Equal(t, "fits your preferred timeframe", got.Matches[0].Reasoning)
	assert.Equal(t, 0, *got.Matches[1].Score)
}

func TestKeywordRecommendProgramLengthCountsOncePerTag(t *testing.T) {
	s := school("Both", nil, nil, []string{"quick 6 month"}, "")
	got := KeywordRecommend(quiz.Answers{"1": "quick 6 month"}, []dto.School{s})
	assert.Equal(t, 1, *got.Matches[0].Score)
}

func TestKeywordRecommendLocationUsesFirstSegment(t *testing.T) {
	schools := []dto.School{
		school("Denver", nil, nil, nil, " Denver , CO"),
		school("Comma", nil, nil, nil, ", CO"),
	}
	got := KeywordRecommend(quiz.Answers{"1": "denver"}, schools)
	assert.Equal(t, "Denver", got.Matches[0].Name)
	assert.Equal(t, 1, *got.Matches[0].Score)
	assert.Equal(t, "located in your preferred area", got.Matches[0].Reasoning)
	assert.Equal(t, 0, *got.Matches[1].Score)
}

func TestKeywordRecommendTopFiveStable(t *testing.T) {
	var schools []dto.School
	for i := 0; i < 8; i++ {
		schools = append(schools, school(fmt.Sprintf("S%d", i), nil, nil, nil, ""))
	}
	schools = append(schools, school("Hit", []string{"welding"}, nil, nil, ""))

	got := KeywordRecommend(quiz.Answers{"1": "welding"}, schools)
	require.Len(t, got.Matches, 5)
	assert.Equal(t, "Hit", got.Matches[0].Name)
	for i, m := range got.Matches[1:] {
		assert.Equal(t, fmt.Sprintf("S%d", i), m.Name)
	}
}

func TestKeywordRecommendEmptySchools(t *testing.T) {
	got := KeywordRecommend(quiz.Answers{"1": "outdoor"}, nil)
	assert.NotNil(t, got.Matches)
	assert.Empty(t, got.Matches)
	assert.NotEmpty(t, got.Analysis)
}

func TestFallbackAnalysisUsesOrderedValues(t *testing.T) {
	answers := quiz.Answers{"2": "hands_on", "1": "outdoor", "3": "practical", "4": "stability", "5": "low_tech", "6": "short_term"}
	got := KeywordRecommend(answers, nil).Analysis

	assert.True(t, strings.HasPrefix(got, "Based on your quiz responses, you have indicated a preference for outdoor work environments and hands_on activities."))
	assert.Contains(t, got, "you value practical approaches to learning and prioritize stability in your career decisions")
	assert.Contains(t, got, "With low_tech technical skills and seeking short_term program durations")
}

func TestFallbackAnalysisMissingValues(t *testing.T) {
	got := KeywordRecommend(quiz.Answers{"1": "indoor"}, nil).Analysis
	assert.Contains(t, got, "preference for indoor work environments and unspecified activities")
	assert.NotContains(t, got, "%!")
}
