package quiz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pathway-infinity/pathway-api/internal/controller"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/middleware"
	"github.com/pathway-infinity/pathway-api/internal/quiz"
	"github.com/pathway-infinity/pathway-api/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	recommendationService service.RecommendationService
	savedResultService    service.SavedResultService
}

func NewQuizController(rs service.RecommendationService, srs service.SavedResultService) *QuizController {
	return &QuizController{
		recommendationService: rs,
		savedResultService:    srs,
	}
}

func toAnalyzeResponse(a *service.Analysis) dto.AnalyzeResponse {
	matches := a.Result.Matches
	if matches == nil {
		matches = []dto.Match{}
	}
	return dto.AnalyzeResponse{Matches: matches, Analysis: a.Result.Analysis, Source: string(a.Source)}
}

// GetQuestions godoc
// @Summary Quiz questions
// @Description Returns the six career-preference questions in display order.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuestionsResponse
// @Router /quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.QuestionsResponse{Questions: quiz.Questions()})
}

// Analyze godoc
// @Summary Rank schools for quiz answers
// @Description Asks the language model for an analysis and 3-5 matches. Falls back to keyword scoring (top 5 with scores) when the model is unavailable or replies with invalid output; "source" tells which path produced the result.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param body body dto.AnalyzeRequest true "Answers and candidate schools"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse "Missing answers or schools"
// @Failure 500 {object} dto.ErrorResponse "Failed to analyze results"
// @Router /quiz/analyze [post]
func (c *QuizController) Analyze(ctx *gin.Context) {
	var req dto.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "quiz.analyze", err)
		return
	}
	if len(req.Answers) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Quiz answers are required"})
		return
	}
	if req.Schools == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Schools data is required and must be an array"})
		return
	}

	analysis, err := c.recommendationService.Analyze(ctx.Request.Context(), req.Answers, service.NormalizeSchools(req.Schools))
	if err != nil {
		controller.RespondError(ctx, "quiz.analyze", err)
		return
	}
	ctx.JSON(http.StatusOK, toAnalyzeResponse(analysis))
}

// Recommend godoc
// @Summary Recommend schools for quiz answers
// @Description Validates the answers, loads schools whose industries match any answer, then analyzes them.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param body body dto.RecommendRequest true "Quiz answers"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid answers"
// @Failure 403 {object} dto.ErrorResponse "Catalog credentials rejected"
// @Failure 404 {object} dto.ErrorResponse "Catalog base or table not found"
// @Failure 500 {object} dto.ErrorResponse "Catalog not configured"
// @Failure 503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router /quiz/recommend [post]
func (c *QuizController) Recommend(ctx *gin.Context) {
	var req dto.RecommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "quiz.recommend", err)
		return
	}
	analysis, err := c.recommendationService.Recommend(ctx.Request.Context(), req.Answers)
	if err != nil {
		controller.RespondError(ctx, "quiz.recommend", err)
		return
	}
	ctx.JSON(http.StatusOK, toAnalyzeResponse(analysis))
}

// SaveResult godoc
// @Summary Save a result
// @Description Stores the given recommendation result for the current user.
// @Tags Saved Results
// @Accept json
// @Produce json
// @Param body body dto.SaveResultRequest true "Result payload (any JSON value)"
// @Success 200 {object} dto.SavedResultResponse
// @Failure 400 {object} dto.ErrorResponse "Results data is required"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/save [post]
func (c *QuizController) SaveResult(ctx *gin.Context) {
	claims, ok := middleware.CurrentSession(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	var req dto.SaveResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "quiz.save", err)
		return
	}
	saved, err := c.savedResultService.Save(ctx.Request.Context(), claims.UID, req.Results)
	if err != nil {
		controller.RespondError(ctx, "quiz.save", err)
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

// ListSavedResults godoc
// @Summary List saved results
// @Description Lists the current user's saved results, newest first.
// @Tags Saved Results
// @Produce json
// @Success 200 {array} dto.SavedResultResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/save [get]
func (c *QuizController) ListSavedResults(ctx *gin.Context) {
	claims, ok := middleware.CurrentSession(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	results, err := c.savedResultService.ListByUser(ctx.Request.Context(), claims.UID)
	if err != nil {
		controller.RespondError(ctx, "quiz.saved.list", err)
		return
	}
	log.Debug().Str("user_id", claims.UID).Int("count", len(results)).Msg("QuizController: listed saved results")
	ctx.JSON(http.StatusOK, results)
}

// GetSavedResult godoc
// @Summary Get a saved result
// @Tags Saved Results
// @Produce json
// @Param id path string true "Saved result ID"
// @Success 200 {object} dto.SavedResultResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /quiz/save/{id} [get]
func (c *QuizController) GetSavedResult(ctx *gin.Context) {
	claims, ok := middleware.CurrentSession(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	result, err := c.savedResultService.GetByID(ctx.Request.Context(), ctx.Param("id"), claims.UID)
	if err != nil {
		controller.RespondError(ctx, "quiz.saved.get", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteSavedResult godoc
// @Summary Delete a saved result
// @Tags Saved Results
// @Produce json
// @Param id path string true "Saved result ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /quiz/save/{id} [delete]
func (c *QuizController) DeleteSavedResult(ctx *gin.Context) {
	claims, ok := middleware.CurrentSession(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := c.savedResultService.DeleteByID(ctx.Request.Context(), ctx.Param("id"), claims.UID); err != nil {
		controller.RespondError(ctx, "quiz.saved.delete", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Result deleted"})
}
