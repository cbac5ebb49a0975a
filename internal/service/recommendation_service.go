package service

import (
	"context"
	"errors"
	"time"

	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/metrics"
	"github.com/pathway-infinity/pathway-api/internal/quiz"
	"github.com/rs/zerolog/log"
)

const (
	maxSchoolsInPrompt = 50
	noSchoolsAnalysis  = "No matching schools found."
)

type RecommendationSource string

const (
	SourceModel    RecommendationSource = "model"
	SourceFallback RecommendationSource = "fallback"
)

// Fallback reasons, also used as metric labels.
const (
	FallbackNoCompleter     = "no_completer"
	FallbackCompletionError = "completion_failed"
	FallbackInvalidResponse = "invalid_response"
	FallbackNoSchools       = "no_schools"
)

// Analysis is the outcome of a recommendation. FallbackReason is empty when
// Source is SourceModel.
type Analysis struct {
	Source         RecommendationSource
	Result         dto.RecommendationResult
	FallbackReason string
}

type RecommendationService interface {
	// Analyze ranks the given schools for the answers. Model failures are
	// absorbed by the keyword scorer; only invalid input is an error.
	Analyze(ctx context.Context, answers quiz.Answers, schools []dto.School) (*Analysis, error)
	// Recommend validates the answers against the questionnaire, loads the
	// matching schools from the catalog and analyzes them.
	Recommend(ctx context.Context, answers quiz.Answers) (*Analysis, error)
}

type recommendationService struct {
	completer Completer
	schools   SchoolService
}

// NewRecommendationService accepts a nil completer.
func NewRecommendationService(completer Completer, schools SchoolService) RecommendationService {
	return &recommendationService{completer: completer, schools: schools}
}

func (s *recommendationService) Analyze(ctx context.Context, answers quiz.Answers, schools []dto.School) (*Analysis, error) {
	if len(answers) == 0 {
		return nil, NewValidationError("Quiz answers are required")
	}
	if schools == nil {
		schools = []dto.School{}
	}

	if s.completer == nil {
		return s.fallback(answers, schools, FallbackNoCompleter, nil), nil
	}

	forPrompt := schools
	if len(forPrompt) > maxSchoolsInPrompt {
		forPrompt = forPrompt[:maxSchoolsInPrompt]
	}
	log.Info().Int("schools", len(forPrompt)).Int("total", len(schools)).Str("provider", s.completer.Name()).
		Msg("RecommendationService: requesting model analysis")

	prompt, err := buildRecommendationPrompt(answers, forPrompt)
	if err != nil {
		return nil, wrapError(KindInternal, "Failed to analyze results", err)
	}

	start := time.Now()
	raw, err := s.completer.Complete(ctx, counselorSystemPrompt, prompt)
	if err != nil {
		return s.fallback(answers, schools, FallbackCompletionError, err), nil
	}
	result, err := parseModelResponse(raw)
	if err != nil {
		return s.fallback(answers, schools, FallbackInvalidResponse, err), nil
	}

	log.Info().Dur("latency", time.Since(start)).Int("matches", len(result.Matches)).
		Msg("RecommendationService: model analysis succeeded")
	metrics.RecommendationsTotal.WithLabelValues(string(SourceModel)).Inc()
	return &Analysis{Source: SourceModel, Result: *result}, nil
}

func (s *recommendationService) Recommend(ctx context.Context, answers quiz.Answers) (*Analysis, error) {
	if err := quiz.Validate(answers); err != nil {
		if errors.Is(err, quiz.ErrNoAnswers) {
			return nil, wrapError(KindValidation, "Quiz answers are required", err)
		}
		return nil, wrapError(KindValidation, "Quiz answers do not match the questionnaire", err)
	}

	schools, err := s.schools.FetchFilteredSchools(ctx, answers, nil)
	if err != nil {
		return nil, err
	}
	if len(schools) == 0 {
		metrics.RecommendationsTotal.WithLabelValues(string(SourceFallback)).Inc()
		metrics.RecommendationFallbacks.WithLabelValues(FallbackNoSchools).Inc()
		return &Analysis{
			Source:         SourceFallback,
			Result:         dto.RecommendationResult{Analysis: noSchoolsAnalysis, Matches: []dto.Match{}},
			FallbackReason: FallbackNoSchools,
		}, nil
	}
	return s.Analyze(ctx, answers, schools)
}

// fallback scores the full, untruncated school list.
func (s *recommendationService) fallback(answers quiz.Answers, schools []dto.School, reason string, cause error) *Analysis {
	evt := log.Warn().Str("reason", reason).Int("schools", len(schools))
	if cause != nil {
		evt = evt.Err(cause)
	}
	evt.Msg("RecommendationService: using keyword fallback")

	metrics.RecommendationsTotal.WithLabelValues(string(SourceFallback)).Inc()
	metrics.RecommendationFallbacks.WithLabelValues(reason).Inc()
	return &Analysis{
		Source:         SourceFallback,
		Result:         KeywordRecommend(answers, schools),
		FallbackReason: reason,
	}
}
