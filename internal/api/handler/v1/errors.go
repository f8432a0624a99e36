package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/service"
)

// renderServiceErr maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is a 500 prefixed with op.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case domain.IsValidationError(err):
		response.RenderErr(ctx, response.ErrUnprocessable(err))
	case domain.IsBusinessRuleError(err):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "eventID", ctx.Param("eventID")))
	case errors.Is(err, service.ErrLogNotFound):
		response.RenderErr(ctx, response.ErrNotFound("point detail", "logID", ctx.Param("logID")))
	case errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrDepartmentNotFound),
		errors.Is(err, service.ErrUnknownTarget):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrDuplicateTarget):
		response.RenderErr(ctx, response.ErrConflict(err))
	case service.IsNetworkError(err):
		response.RenderErr(ctx, response.ErrBadGateway(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func parseID(ctx *gin.Context, param string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s %q", param, ctx.Param(param)))
	}

	return uint(id), nil
}
