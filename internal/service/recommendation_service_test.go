package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pathway-infinity/pathway-api/internal/airtable"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply   string
	err     error
	calls   int
	system  string
	prompts []string
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.prompts = append(f.prompts, user)
	return f.reply, f.err
}

func manySchools(n int) []dto.School {
	out := make([]dto.School, n)
	for i := range out {
		out[i] = school(fmt.Sprintf("School%03d", i), nil, nil, nil, "")
	}
	return out
}

var sampleAnswers = quiz.Answers{"1": "outdoor", "2": "hands_on"}

const validModelReply = `{
  "analysis": "You enjoy practical outdoor work.",
  "recommendedSchools": [
    {"id": "rec1", "Name": "Acme", "Pathway": "Welding", "Cost": "", "reasoning": "Great fit."},
    {"name": "Beta", "programLength": ["6 Months"], "cost": "$900", "reasoning": "Short program."}
  ],
  "extra": true
}`

func TestAnalyzeRequiresAnswers(t *testing.T) {
	svc := NewRecommendationService(&fakeCompleter{}, nil)
	_, err := svc.Analyze(context.Background(), nil, manySchools(1))
	assert.True(t, IsKind(err, KindValidation))

	_, err = svc.Analyze(context.Background(), quiz.Answers{}, manySchools(1))
	assert.True(t, IsKind(err, KindValidation))
}

func TestAnalyzeUsesModelResponse(t *testing.T) {
	completer := &fakeCompleter{reply: validModelReply}
	svc := NewRecommendationService(completer, nil)

	got, err := svc.Analyze(context.Background(), sampleAnswers, manySchools(3))
	require.NoError(t, err)

	assert.Equal(t, SourceModel, got.Source)
	assert.Empty(t, got.FallbackReason)
	assert.Equal(t, "You enjoy practical outdoor work.", got.Result.Analysis)
	require.Len(t, got.Result.Matches, 2)

	first := got.Result.Matches[0]
	assert.Equal(t, "rec1", first.ID)
	assert.Equal(t, "Acme", first.Name)
	assert.Equal(t, []string{"Welding"}, first.Pathway)
	assert.Equal(t, CostPlaceholder, first.Cost)
	assert.Equal(t, "Great fit.", first.Reasoning)
	assert.Nil(t, first.Score)

	second := got.Result.Matches[1]
	assert.Equal(t, []string{"6 Months"}, second.ProgramLength)
	assert.Equal(t, "$900", second.Cost)
	assert.Equal(t, []string{}, second.Industries)

	assert.Equal(t, counselorSystemPrompt, completer.system)
	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0], `Student Quiz Answers: {"1":"outdoor","2":"hands_on"}`)
	assert.Contains(t, completer.prompts[0], `"recommendedSchools"`)
}

func TestAnalyzeStripsCodeFence(t *testing.T) {
	completer := &fakeCompleter{reply: "```json\n" + validModelReply + "\n```"}
	got, err := NewRecommendationService(completer, nil).Analyze(context.Background(), sampleAnswers, manySchools(1))
	require.NoError(t, err)
	assert.Equal(t, SourceModel, got.Source)
}

func TestAnalyzeAcceptsEmptyRecommendations(t *testing.T) {
	completer := &fakeCompleter{reply: `{"analysis":"Nothing fits.","recommendedSchools":[]}`}
	got, err := NewRecommendationService(completer, nil).Analyze(context.Background(), sampleAnswers, manySchools(2))
	require.NoError(t, err)
	assert.Equal(t, SourceModel, got.Source)
	assert.Empty(t, got.Result.Matches)
}

func TestAnalyzeKeepsFirstFiveRecommendations(t *testing.T) {
	items := make([]string, 7)
	for i := range items {
		items[i] = fmt.Sprintf(`{"name":"Pick%d","reasoning":"fit %d"}`, i, i)
	}
	reply := `{"analysis":"Plenty of options.","recommendedSchools":[` + strings.Join(items, ",") + `]}`

	got, err := NewRecommendationService(&fakeCompleter{reply: reply}, nil).Analyze(context.Background(), sampleAnswers, manySchools(10))
	require.NoError(t, err)
	assert.Equal(t, SourceModel, got.Source)
	require.Len(t, got.Result.Matches, 5)
	assert.Equal(t, "Pick0", got.Result.Matches[0].Name)
	assert.Equal(t, "Pick4", got.Result.Matches[4].Name)
	assert.Equal(t, "fit 4", got.Result.Matches[4].Reasoning)
}

func TestAnalyzeTruncatesPromptButFallbackScoresAll(t *testing.T) {
	schools := manySchools(60)
	schools[55].Pathway = []string{"outdoor"}

	completer := &fakeCompleter{reply: "not json"}
	got, err := NewRecommendationService(completer, nil).Analyze(context.Background(), sampleAnswers, schools)
	require.NoError(t, err)

	prompt := completer.prompts[0]
	assert.Contains(t, prompt, "School049")
	assert.NotContains(t, prompt, "School050")

	assert.Equal(t, SourceFallback, got.Source)
	assert.Equal(t, FallbackInvalidResponse, got.FallbackReason)
	assert.Equal(t, "School055", got.Result.Matches[0].Name)
}

func TestAnalyzeFallsBackOnInvalidModelOutput(t *testing.T) {
	replies := map[string]string{
		"not json":             "Sure! Here are some schools.",
		"missing analysis":     `{"recommendedSchools":[]}`,
		"missing schools":      `{"analysis":"ok"}`,
		"empty analysis":       `{"analysis":"","recommendedSchools":[]}`,
		"schools not an array": `{"analysis":"ok","recommendedSchools":{"a":1}}`,
		"school not an object": `{"analysis":"ok","recommendedSchools":["Acme"]}`,
		"top level array":      `[{"analysis":"ok"}]`,
	}
	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			completer := &fakeCompleter{reply: reply}
			got, err := NewRecommendationService(completer, nil).Analyze(context.Background(), sampleAnswers, manySchools(2))
			require.NoError(t, err)
			assert.Equal(t, SourceFallback, got.Source)
			assert.Equal(t, FallbackInvalidResponse, got.FallbackReason)
			assert.Equal(t, 1, completer.calls)
			require.NotEmpty(t, got.Result.Matches)
			assert.NotNil(t, got.Result.Matches[0].Score)
		})
	}
}

func TestAnalyzeFallsBackOnCompletionError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("rate limited")}
	got, err := NewRecommendationService(completer, nil).Analyze(context.Background(), sampleAnswers, manySchools(2))
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, got.Source)
	assert.Equal(t, FallbackCompletionError, got.FallbackReason)
	assert.Equal(t, 1, completer.calls)
}

func TestAnalyzeWithoutCompleter(t *testing.T) {
	got, err := NewRecommendationService(nil, nil).Analyze(context.Background(), sampleAnswers, nil)
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, got.Source)
	assert.Equal(t, FallbackNoCompleter, got.FallbackReason)
	assert.NotNil(t, got.Result.Matches)
	assert.True(t, strings.HasPrefix(got.Result.Analysis, "Based on your quiz responses"))
}

func TestRecommendValidatesAnswers(t *testing.T) {
	lister := &fakeLister{}
	svc := NewRecommendationService(nil, NewSchoolService(lister))

	_, err := svc.Recommend(context.Background(), quiz.Answers{})
	assert.True(t, IsKind(err, KindValidation))

	_, err = svc.Recommend(context.Background(), quiz.Answers{"1": "spaceship"})
	assert.True(t, IsKind(err, KindValidation))
	assert.Empty(t, lister.calls)
}

func TestRecommendWithNoSchoolsSkipsModel(t *testing.T) {
	completer := &fakeCompleter{reply: validModelReply}
	svc := NewRecommendationService(completer, NewSchoolService(&fakeLister{}))

	got, err := svc.Recommend(context.Background(), sampleAnswers)
	require.NoError(t, err)
	assert.Equal(t, "No matching schools found.", got.Result.Analysis)
	assert.NotNil(t, got.Result.Matches)
	assert.Empty(t, got.Result.Matches)
	assert.Equal(t, FallbackNoSchools, got.FallbackReason)
	assert.Zero(t, completer.calls)
}

func TestRecommendFetchesThenAnalyzes(t *testing.T) {
	lister := &fakeLister{records: []airtable.Record{{ID: "rec1", Fields: map[string]any{"Name": "Acme"}}}}
	completer := &fakeCompleter{reply: validModelReply}
	svc := NewRecommendationService(completer, NewSchoolService(lister))

	got, err := svc.Recommend(context.Background(), sampleAnswers)
	require.NoError(t, err)
	assert.Equal(t, SourceModel, got.Source)
	require.Len(t, lister.calls, 1)
	assert.Contains(t, lister.calls[0].FilterByFormula, `SEARCH("outdoor", {Industries})`)
	assert.Contains(t, completer.prompts[0], `"name":"Acme"`)
}

func TestRecommendPropagatesCatalogErrors(t *testing.T) {
	svc := NewRecommendationService(nil, NewSchoolService(&fakeLister{err: airtable.ErrNotConfigured}))
	_, err := svc.Recommend(context.Background(), sampleAnswers)
	assert.True(t, IsKind(err, KindUpstreamConfiguration))
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```{\"a\":1}```"))
}
