package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/pathway-infinity/pathway-api/internal/airtable"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/metrics"
	"github.com/pathway-infinity/pathway-api/internal/quiz"
	"github.com/rs/zerolog/log"
)

const catalogMaxRecords = 100

// RecordLister is the part of the Airtable client the catalog needs.
type RecordLister interface {
	List(ctx context.Context, params airtable.ListParams) ([]airtable.Record, error)
}

type SchoolService interface {
	// FetchSchools lists schools whose name, description or location contains
	// searchTerm (case-insensitive). An empty term lists all schools.
	FetchSchools(ctx context.Context, searchTerm string) ([]dto.School, error)
	// FetchFilteredSchools narrows by quiz answers (industry match on any
	// answer value) or, when there are no answers, by explicit filters.
	FetchFilteredSchools(ctx context.Context, answers quiz.Answers, filters *dto.SchoolFilters) ([]dto.School, error)
}

type schoolService struct {
	lister RecordLister
}

func NewSchoolService(lister RecordLister) SchoolService {
	return &schoolService{lister: lister}
}

func (s *schoolService) FetchSchools(ctx context.Context, searchTerm string) ([]dto.School, error) {
	return s.fetch(ctx, SearchFormula(searchTerm))
}

func (s *schoolService) FetchFilteredSchools(ctx context.Context, answers quiz.Answers, filters *dto.SchoolFilters) ([]dto.School, error) {
	formula := ""
	if len(answers) > 0 {
		formula = AnswersFormula(answers)
	} else if filters != nil {
		formula = FiltersFormula(*filters)
	}
	return s.fetch(ctx, formula)
}

func (s *schoolService) fetch(ctx context.Context, formula string) ([]dto.School, error) {
	start := time.Now()
	records, err := s.lister.List(ctx, airtable.ListParams{FilterByFormula: formula, MaxRecords: catalogMaxRecords})
	metrics.CatalogRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		mapped := mapCatalogError(err)
		if ae, ok := AsAppError(mapped); ok {
			metrics.CatalogRequestsTotal.WithLabelValues(string(ae.Kind)).Inc()
		}
		log.Error().Err(err).Str("formula", formula).Msg("SchoolService: catalog request failed")
		return nil, mapped
	}
	metrics.CatalogRequestsTotal.WithLabelValues("ok").Inc()

	schools := make([]dto.School, 0, len(records))
	for _, rec := range records {
		schools = append(schools, NormalizeSchool(rec.ID, rec.Fields))
	}
	log.Debug().Int("count", len(schools)).Str("formula", formula).Msg("SchoolService: fetched schools")
	return schools, nil
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, airtable.ErrNotConfigured):
		return wrapError(KindUpstreamConfiguration, "School catalog is not configured", err)
	case errors.Is(err, airtable.ErrNotAuthorized):
		return wrapError(KindForbidden, "Not authorized to access the school catalog", err)
	case errors.Is(err, airtable.ErrNotFound):
		return wrapError(KindNotFound, "School catalog not found", err)
	default:
		return wrapError(KindUpstreamCall, "Failed to fetch schools", err)
	}
}

// SearchFormula matches the lower-cased term against name, description and
// location.
func SearchFormula(searchTerm string) string {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return ""
	}
	q := airtable.Quote(term)
	return "OR(" +
		"SEARCH(" + q + ", LOWER({Name})), " +
		"SEARCH(" + q + ", LOWER({Description})), " +
		"SEARCH(" + q + ", LOWER({Location})))"
}

// AnswersFormula matches schools whose industries mention any answer value.
func AnswersFormula(answers quiz.Answers) string {
	var terms []string
	for _, v := range answers.Values() {
		if v = strings.TrimSpace(v); v != "" {
			terms = append(terms, "SEARCH("+airtable.Quote(v)+", "+airtable.Field("Industries")+")")
		}
	}
	return airtable.Or(terms...)
}

// FiltersFormula requires every filter that is set.
func FiltersFormula(f dto.SchoolFilters) string {
	var terms []string
	add := func(value, field string) {
		if value = strings.TrimSpace(value); value != "" {
			terms = append(terms, "SEARCH("+airtable.Quote(value)+", "+airtable.Field(field)+")")
		}
	}
	add(f.Location, "Location")
	add(f.Pathway, "Pathway")
	add(f.Industries, "Industries")
	if f.CostRange != nil {
		if f.CostRange.Min != nil {
			terms = append(terms, "VALUE({Cost}) >= "+formatNumber(*f.CostRange.Min))
		}
		if f.CostRange.Max != nil {
			terms = append(terms, "VALUE({Cost}) <= "+formatNumber(*f.CostRange.Max))
		}
	}
	return airtable.And(terms...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
