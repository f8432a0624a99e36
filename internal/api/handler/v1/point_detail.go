package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/service"
)

type PointDetailService interface {
	List(ctx context.Context, eventID uint) ([]domain.PointDetailRow, error)
	CreateDepartmentRows(ctx context.Context, eventID uint, rows []domain.DepartmentRow) ([]domain.DepartmentRow, error)
	CreateMemberRows(ctx context.Context, eventID uint, rows []domain.MemberRow) ([]domain.MemberRow, error)
	UpdateRow(ctx context.Context, row domain.PointDetailRow) (domain.PointDetailRow, error)
	Submit(ctx context.Context, eventID uint, current []domain.PointDetailRow) (service.ApplyResult, error)
}

type PointDetailHandler struct {
	svc PointDetailService
}

func NewPointDetailHandler(svc PointDetailService) *PointDetailHandler {
	return &PointDetailHandler{
		svc: svc,
	}
}

// HandleGetPointDetails godoc
// @Summary      List point details
// @Tags         point-details
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.PointDetails
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/point-details [get]
func (h *PointDetailHandler) HandleGetPointDetails(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	rows, err := h.svc.List(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetPointDetails -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewPointDetails(rows))
}

// HandleCreateDepartmentRows godoc
// @Summary      Add department point details
// @Tags         point-details
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                    true  "event ID"
// @Param        request  body      request.CreateDepartmentRowsRequest  true  "request body"
// @Success      201      {array}   domain.DepartmentRow
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/point-details/department [post]
func (h *PointDetailHandler) HandleCreateDepartmentRows(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateDepartmentRowsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rows, err := h.svc.CreateDepartmentRows(ctx.Request.Context(), eventID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateDepartmentRows -> h.svc.CreateDepartmentRows", err)
		return
	}

	ctx.JSON(http.StatusCreated, rows)
}

// HandleCreateMemberRows godoc
// @Summary      Add member point details
// @Tags         point-details
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                true  "event ID"
// @Param        request  body      request.CreateMemberRowsRequest  true  "request body"
// @Success      201      {array}   domain.MemberRow
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/point-details/member [post]
func (h *PointDetailHandler) HandleCreateMemberRows(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateMemberRowsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rows, err := h.svc.CreateMemberRows(ctx.Request.Context(), eventID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateMemberRows -> h.svc.CreateMemberRows", err)
		return
	}

	ctx.JSON(http.StatusCreated, rows)
}

// HandleUpdateDepartmentRow godoc
// @Summary      Edit a department point detail
// @Description  Only the fields that differ from the stored row are written.
// @Tags         point-details
// @Accept       json
// @Produce      json
// @Param        logID    path      int                           true  "log ID"
// @Param        request  body      request.DepartmentRowRequest  true  "request body"
// @Success      200      {object}  domain.DepartmentRow
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /point-details/department/{logID} [patch]
func (h *PointDetailHandler) HandleUpdateDepartmentRow(ctx *gin.Context) {
	logID, respErr := parseID(ctx, "logID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.DepartmentRowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	req.LogID = &logID

	h.updateRow(ctx, "v1.HandleUpdateDepartmentRow -> h.svc.UpdateRow", req.ToDomain())
}

// HandleUpdateMemberRow godoc
// @Summary      Edit a member point detail
// @Description  Only the fields that differ from the stored row are written.
// @Tags         point-details
// @Accept       json
// @Produce      json
// @Param        logID    path      int                       true  "log ID"
// @Param        request  body      request.MemberRowRequest  true  "request body"
// @Success      200      {object}  domain.MemberRow
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /point-details/member/{logID} [patch]
func (h *PointDetailHandler) HandleUpdateMemberRow(ctx *gin.Context) {
	logID, respErr := parseID(ctx, "logID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.MemberRowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	req.LogID = &logID

	h.updateRow(ctx, "v1.HandleUpdateMemberRow -> h.svc.UpdateRow", req.ToDomain())
}

func (h *PointDetailHandler) updateRow(ctx *gin.Context, op string, row domain.PointDetailRow) {
	updated, err := h.svc.UpdateRow(ctx.Request.Context(), row)
	if err != nil {
		renderServiceErr(ctx, op, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleSubmitPointDetails godoc
// @Summary      Submit edited point details
// @Description  Reconciles the submitted snapshot against the stored one. Rows left out are kept, never deleted.
// @Description  When only some operations succeed the response is 207 and lists the failed ones.
// @Tags         point-details
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                 true  "event ID"
// @Param        request  body      request.SubmitPointDetailsRequest  true  "request body"
// @Success      200      {object}  response.Submission
// @Success      207      {object}  response.Submission
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/point-details [put]
func (h *PointDetailHandler) HandleSubmitPointDetails(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SubmitPointDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Submit(ctx.Request.Context(), eventID, req.ToDomain())
	body := response.Submission{
		Total:     result.Total,
		Succeeded: result.Succeeded,
		Updated:   response.NewPointDetails(result.Updated),
		Created:   response.NewPointDetails(result.Created),
	}

	var partial *service.PartialFailure
	if errors.As(err, &partial) {
		for _, f := range partial.Failed {
			body.Failed = append(body.Failed, response.FailedOperation{Op: f.Op, LogID: f.LogID, Error: f.Err.Error()})
		}
		ctx.JSON(http.StatusMultiStatus, body)
		return
	}
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSubmitPointDetails -> h.svc.Submit", err)
		return
	}

	ctx.JSON(http.StatusOK, body)
}
