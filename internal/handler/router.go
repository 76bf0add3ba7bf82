package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	internalmiddleware "github.com/noah-isme/cadet-records-api/internal/middleware"
	"github.com/noah-isme/cadet-records-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/cadet-records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/cadet-records-api/pkg/middleware/requestid"
)

// RouterOptions configures the HTTP surface.
type RouterOptions struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	Logger         *zap.Logger
	Tokens         internalmiddleware.TokenValidator
	Requests       internalmiddleware.RequestObserver
}

// Handlers groups every resource handler mounted by NewRouter.
type Handlers struct {
	Auth       *AuthHandler
	Students   *StudentHandler
	Leadership *LeadershipHandler
	Teams      *TeamHandler
	Courses    *CourseHandler
	Tags       *TagHandler
	Metrics    *MetricsHandler
}

// NewRouter builds the gin engine. Auth routes are public, everything else under the prefix needs a bearer token
// and writes additionally need the edit capability.
func NewRouter(opts RouterOptions, h Handlers) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(opts.Requests))

	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(opts.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)

	secured := api.Group("")
	secured.Use(internalmiddleware.JWT(opts.Tokens))
	secured.Use(internalmiddleware.EditOnWrite())

	secured.GET("/profile", h.Auth.Profile)

	students := secured.Group("/students")
	students.GET("/team/:teamId", h.Students.ListByTeam)
	students.GET("/:id", h.Students.Get)
	students.POST("", h.Students.Create)
	students.PUT("/:id", h.Students.Update)
	students.DELETE("/:id", h.Students.Delete)

	leadership := secured.Group("/leadership")
	leadership.GET("/:courseId", h.Leadership.GetByCourse)
	leadership.POST("", h.Leadership.Save)
	leadership.DELETE("/:id", h.Leadership.Delete)

	teams := secured.Group("/teams")
	teams.GET("", h.Teams.List)
	teams.POST("", h.Teams.Save)
	teams.GET("/:id/students/export", h.Teams.Export)

	courses := secured.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.POST("", h.Courses.Create)
	courses.POST("/promote", h.Courses.Promote)

	tags := secured.Group("/tags")
	tags.GET("", h.Tags.List)
	tags.POST("", h.Tags.Create)
	tags.PUT("/:id", h.Tags.Update)
	tags.DELETE("/:id", h.Tags.Delete)

	return r
}
