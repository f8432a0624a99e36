package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/service"
)

type EventService interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Get(ctx context.Context, id uint) (domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Open(ctx context.Context, id uint) (domain.Event, error)
	Activate(ctx context.Context, id uint) (domain.Event, error)
	Close(ctx context.Context, id uint, withCertificates bool) (service.CloseResult, error)
	CreateComposite(ctx context.Context, in service.CompositeInput) (domain.EventReport, error)
}

type CertificateService interface {
	SendForEvent(ctx context.Context, eventID uint) (domain.CertificateJob, error)
	Jobs(ctx context.Context, eventID uint) ([]domain.CertificateJob, error)
}

type EventHandler struct {
	svc          EventService
	certificates CertificateService
}

func NewEventHandler(svc EventService, certificates CertificateService) *EventHandler {
	return &EventHandler{
		svc:          svc,
		certificates: certificates,
	}
}

// HandleGetEvents godoc
// @Summary      List events
// @Description  Hidden events used only for scoring are not listed.
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetEvents -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.Get(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetEvent -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Creates a draft event. Event names are unique.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateEvent -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleCreateCompositeEvent godoc
// @Summary      Create an event with its points
// @Description  Creates the event, resolves the selected action into department and member awards and stores them in one transaction.
// @Description  For composite actions the bonus and discount apply to the department award only.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CompositeEventRequest  true  "request body"
// @Success      201      {object}  domain.EventReport
// @Failure      400      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/composite [post]
func (h *EventHandler) HandleCreateCompositeEvent(ctx *gin.Context) {
	var req request.CompositeEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, selection := req.ToDomain()
	report, err := h.svc.CreateComposite(ctx.Request.Context(), service.CompositeInput{
		Event:     event,
		Selection: selection,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateCompositeEvent -> h.svc.CreateComposite", err)
		return
	}

	ctx.JSON(http.StatusCreated, report)
}

// HandleOpenEvent godoc
// @Summary      Open an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/open [post]
func (h *EventHandler) HandleOpenEvent(ctx *gin.Context) {
	h.handleTransition(ctx, "v1.HandleOpenEvent -> h.svc.Open", h.svc.Open)
}

// HandleActivateEvent godoc
// @Summary      Start attendance
// @Description  Activates an open event, or reopens a closed one.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/activate [post]
func (h *EventHandler) HandleActivateEvent(ctx *gin.Context) {
	h.handleTransition(ctx, "v1.HandleActivateEvent -> h.svc.Activate", h.svc.Activate)
}

func (h *EventHandler) handleTransition(ctx *gin.Context, op string, fn func(context.Context, uint) (domain.Event, error)) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := fn(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, op, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCloseEvent godoc
// @Summary      Close an event
// @Description  Closes an active event. With certificates=true certificates are then dispatched;
// @Description  a dispatch failure leaves the event closed and is returned as a warning.
// @Tags         events
// @Produce      json
// @Param        eventID       path      int   true   "event ID"
// @Param        certificates  query     bool  false  "dispatch certificates after closing"
// @Success      200           {object}  service.CloseResult
// @Failure      400           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /events/{eventID}/close [post]
func (h *EventHandler) HandleCloseEvent(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	withCertificates := false
	if raw := ctx.Query("certificates"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		withCertificates = v
	}

	result, err := h.svc.Close(ctx.Request.Context(), eventID, withCertificates)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCloseEvent -> h.svc.Close", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleSendCertificates godoc
// @Summary      Send certificates
// @Description  Dispatches certificates to members who attended every day of a closed event.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      202      {object}  domain.CertificateJob
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/certificates [post]
func (h *EventHandler) HandleSendCertificates(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	job, err := h.certificates.SendForEvent(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSendCertificates -> h.certificates.SendForEvent", err)
		return
	}

	ctx.JSON(http.StatusAccepted, job)
}

// HandleGetCertificateJobs godoc
// @Summary      Certificate dispatch history
// @Description  Every dispatch attempt of an event, newest first, including failed ones.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.CertificateJob
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/certificates [get]
func (h *EventHandler) HandleGetCertificateJobs(ctx *gin.Context) {
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	jobs, err := h.certificates.Jobs(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetCertificateJobs -> h.certificates.Jobs", err)
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}
