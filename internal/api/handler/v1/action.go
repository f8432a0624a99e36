package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

type ActionService interface {
	Listing(ctx context.Context) (domain.ActionListing, error)
}

type ActionHandler struct {
	svc ActionService
}

func NewActionHandler(svc ActionService) *ActionHandler {
	return &ActionHandler{
		svc: svc,
	}
}

// HandleGetActions godoc
// @Summary      List scoring actions
// @Description  Actions grouped into composite pairs, department, member and custom actions. Always reads fresh data.
// @Tags         actions
// @Produce      json
// @Success      200  {object}  domain.ActionListing
// @Failure      500  {object}  response.Err
// @Router       /events/actions [get]
func (h *ActionHandler) HandleGetActions(ctx *gin.Context) {
	listing, err := h.svc.Listing(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetActions -> h.svc.Listing", err)
		return
	}

	ctx.JSON(http.StatusOK, listing)
}
