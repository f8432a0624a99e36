package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type AttendanceService interface {
	Record(ctx context.Context, eventID, memberID uint) (domain.Scan, error)
	Attendance(ctx context.Context, eventID uint, f scoring.DayFilter) ([]domain.AttendanceRecord, error)
}

type AttendanceHandler struct {
	svc AttendanceService
}

func NewAttendanceHandler(svc AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		svc: svc,
	}
}

// HandleGetAttendance godoc
// @Summary      Event attendance
// @Description  day is a 1-based day number, "all" for anyone present at least once, or "exclusive_all" for members present every day.
// @Tags         attendance
// @Produce      json
// @Param        eventID  path      int     true   "event ID"
// @Param        day      query     string  false  "day filter"  default(all)
// @Success      200      {object}  response.Attendance
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/attendance [get]
func (h *AttendanceHandler) HandleGetAttendance(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	filter, err := scoring.ParseDayFilter(ctx.DefaultQuery("day", "all"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	records, err := h.svc.Attendance(ctx.Request.Context(), eventID, filter)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetAttendance -> h.svc.Attendance", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAttendance(records))
}

// HandleRecordAttendance godoc
// @Summary      Record a scan
// @Description  Records that a member attended an active event today. One scan per member and day.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                               true  "event ID"
// @Param        request  body      request.RecordAttendanceRequest  true  "request body"
// @Success      201      {object}  domain.Scan
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/attendance [post]
func (h *AttendanceHandler) HandleRecordAttendance(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	scan, err := h.svc.Record(ctx.Request.Context(), eventID, req.MemberID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRecordAttendance -> h.svc.Record", err)
		return
	}

	ctx.JSON(http.StatusCreated, scan)
}
