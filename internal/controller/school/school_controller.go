package school

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pathway-infinity/pathway-api/internal/controller"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/service"
)

type SchoolController struct {
	schoolService service.SchoolService
}

func NewSchoolController(ss service.SchoolService) *SchoolController {
	return &SchoolController{schoolService: ss}
}

// ListSchools godoc
// @Summary List schools
// @Description Lists up to 100 schools from the catalog, optionally filtered by a case-insensitive search over name, description and location.
// @Tags Schools
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} dto.SchoolsResponse
// @Failure 403 {object} dto.ErrorResponse "Catalog credentials rejected"
// @Failure 404 {object} dto.ErrorResponse "Catalog base or table not found"
// @Failure 500 {object} dto.ErrorResponse "Catalog not configured"
// @Failure 503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router /schools [get]
func (c *SchoolController) ListSchools(ctx *gin.Context) {
	var q dto.SchoolSearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid search term"})
		return
	}
	schools, err := c.schoolService.FetchSchools(ctx.Request.Context(), q.Search)
	if err != nil {
		controller.RespondError(ctx, "schools.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SchoolsResponse{Schools: schools})
}

// QuerySchools godoc
// @Summary Filter schools
// @Description Selects schools by quiz answers (industry match on any answer) or, when no answers are given, by explicit filters.
// @Tags Schools
// @Accept json
// @Produce json
// @Param body body dto.SchoolQueryRequest true "Answers or filters"
// @Success 200 {object} dto.SchoolsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Catalog credentials rejected"
// @Failure 404 {object} dto.ErrorResponse "Catalog base or table not found"
// @Failure 500 {object} dto.ErrorResponse "Catalog not configured"
// @Failure 503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router /schools [post]
func (c *SchoolController) QuerySchools(ctx *gin.Context) {
	var req dto.SchoolQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "schools.query", err)
		return
	}
	schools, err := c.schoolService.FetchFilteredSchools(ctx.Request.Context(), req.Answers, req.Filters)
	if err != nil {
		controller.RespondError(ctx, "schools.query", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SchoolsResponse{Schools: schools})
}
