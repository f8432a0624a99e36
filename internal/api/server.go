package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/club-points/docs"
	v1 "github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/config"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Actions and Events are exposed for the catalog warm-up and the
	// activation scheduler.
	Actions *service.ActionService
	Events  *service.EventService
}

type handlers struct {
	action      *v1.ActionHandler
	event       *v1.EventHandler
	pointDetail *v1.PointDetailHandler
	attendance  *v1.AttendanceHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB, publisher service.CertificatePublisher) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db, publisher))

	return s
}

func (s *Server) initHandlers(db *gorm.DB, publisher service.CertificatePublisher) handlers {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))
	pointDetailRepo := repository.NewPointDetailRepository(dao.NewPointDetailDAO(db))
	jobRepo := repository.NewCertificateJobRepository(dao.NewCertificateJobDAO(db))

	s.Actions = service.NewActionService(
		repository.NewActionRepository(dao.NewActionDAO(db)),
		s.Config.Scoring.CompositePairs,
	)
	certificates := service.NewCertificateService(publisher, jobRepo, attendanceRepo, eventRepo)
	s.Events = service.NewEventService(eventRepo, memberRepo, s.Actions, certificates)
	pointDetails := service.NewPointDetailService(pointDetailRepo, eventRepo, s.Actions, s.Config.Scoring.UpdateConcurrency)
	attendance := service.NewAttendanceService(attendanceRepo, eventRepo, memberRepo)

	return handlers{
		action:      v1.NewActionHandler(s.Actions),
		event:       v1.NewEventHandler(s.Events, certificates),
		pointDetail: v1.NewPointDetailHandler(pointDetails),
		attendance:  v1.NewAttendanceHandler(attendance),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	events := s.Router.Group(basePath + "/events")
	{
		events.GET("", h.event.HandleGetEvents)
		events.POST("", h.event.HandleCreateEvent)
		events.GET("/actions", h.action.HandleGetActions)
		events.POST("/composite", h.event.HandleCreateCompositeEvent)
		events.GET("/:eventID", h.event.HandleGetEvent)
		events.POST("/:eventID/open", h.event.HandleOpenEvent)
		events.POST("/:eventID/activate", h.event.HandleActivateEvent)
		events.POST("/:eventID/close", h.event.HandleCloseEvent)
		events.POST("/:eventID/certificates", h.event.HandleSendCertificates)
		events.GET("/:eventID/certificates", h.event.HandleGetCertificateJobs)

		events.GET("/:eventID/attendance", h.attendance.HandleGetAttendance)
		events.POST("/:eventID/attendance", h.attendance.HandleRecordAttendance)

		events.GET("/:eventID/point-details", h.pointDetail.HandleGetPointDetails)
		events.PUT("/:eventID/point-details", h.pointDetail.HandleSubmitPointDetails)
		events.POST("/:eventID/point-details/department", h.pointDetail.HandleCreateDepartmentRows)
		events.POST("/:eventID/point-details/member", h.pointDetail.HandleCreateMemberRows)
	}

	pointDetails := s.Router.Group(basePath + "/point-details")
	{
		pointDetails.PATCH("/department/:logID", h.pointDetail.HandleUpdateDepartmentRow)
		pointDetails.PATCH("/member/:logID", h.pointDetail.HandleUpdateMemberRow)
	}

	wizard := s.Router.Group(basePath + "/wizard")
	{
		wizard.POST("/advance", v1.HandleWizardAdvance)
		wizard.POST("/back", v1.HandleWizardBack)
		wizard.POST("/check", v1.HandleWizardCheck)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Club points API"
	docs.SwaggerInfo.Description = "Scoring, attendance and event lifecycle of the club points system."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
