package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/model"
	"github.com/pathway-infinity/pathway-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SavedResultService interface {
	Save(ctx context.Context, userID string, payload json.RawMessage) (*dto.SavedResultResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.SavedResultResponse, error)
	// GetByID and DeleteByID report NotFound before checking ownership.
	GetByID(ctx context.Context, id, requestingUserID string) (*dto.SavedResultResponse, error)
	DeleteByID(ctx context.Context, id, requestingUserID string) error
}

type savedResultService struct {
	repo repository.SavedResultRepository
	now  func() time.Time
}

func NewSavedResultService(repo repository.SavedResultRepository) SavedResultService {
	return &savedResultService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *savedResultService) Save(ctx context.Context, userID string, payload json.RawMessage) (*dto.SavedResultResponse, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, NewValidationError("Results data is required")
	}
	if !json.Valid(trimmed) {
		return nil, NewValidationError("Results data must be valid JSON")
	}

	record := &model.SavedResult{
		UserID:  userID,
		Results: datatypes.JSON(trimmed),
		SavedAt: s.now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, wrapError(KindInternal, "Internal server error", err)
	}
	log.Info().Str("result_id", record.ID).Str("user_id", userID).Msg("SavedResultService: result saved")

	resp := toSavedResultResponse(record)
	return &resp, nil
}

func (s *savedResultService) ListByUser(ctx context.Context, userID string) ([]dto.SavedResultResponse, error) {
	records, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, wrapError(KindInternal, "Internal server error", err)
	}
	out := make([]dto.SavedResultResponse, 0, len(records))
	for i := range records {
		out = append(out, toSavedResultResponse(&records[i]))
	}
	return out, nil
}

func (s *savedResultService) GetByID(ctx context.Context, id, requestingUserID string) (*dto.SavedResultResponse, error) {
	record, err := s.findOwned(ctx, id, requestingUserID)
	if err != nil {
		return nil, err
	}
	resp := toSavedResultResponse(record)
	return &resp, nil
}

func (s *savedResultService) DeleteByID(ctx context.Context, id, requestingUserID string) error {
	if _, err := s.findOwned(ctx, id, requestingUserID); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return wrapError(KindInternal, "Internal server error", err)
	}
	if !deleted {
		return NewNotFoundError("Result not found")
	}
	log.Info().Str("result_id", id).Str("user_id", requestingUserID).Msg("SavedResultService: result deleted")
	return nil
}

func (s *savedResultService) findOwned(ctx context.Context, id, requestingUserID string) (*model.SavedResult, error) {
	record, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("Result not found")
	}
	if err != nil {
		return nil, wrapError(KindInternal, "Internal server error", err)
	}
	if record.UserID != requestingUserID {
		log.Warn().Str("result_id", id).Str("user_id", requestingUserID).Msg("SavedResultService: access to another user's result denied")
		return nil, NewForbiddenError("Forbidden")
	}
	return record, nil
}

func toSavedResultResponse(m *model.SavedResult) dto.SavedResultResponse {
	var resp dto.SavedResultResponse
	if err := copier.Copy(&resp, m); err != nil {
		log.Error().Err(err).Str("result_id", m.ID).Msg("SavedResultService: failed to map saved result")
	}
	resp.Results = json.RawMessage(m.Results)
	resp.User = dto.UserSummary{ID: m.User.ID, Name: m.User.Name}
	if resp.User.ID == "" {
		resp.User.ID = m.UserID
	}
	return resp
}
