// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hokhau/config"
	"hokhau/internal/delivery/http/middleware"
	"hokhau/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	AuthHandler       *handler.AuthHandler
	RequestHandler    *handler.RequestHandler
	HouseholdHandler  *handler.HouseholdHandler
	ResidentHandler   *handler.ResidentHandler
	FeedbackHandler   *handler.FeedbackHandler
	AttachmentHandler *handler.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	authHandler       *handler.AuthHandler
	requestHandler    *handler.RequestHandler
	householdHandler  *handler.HouseholdHandler
	residentHandler   *handler.ResidentHandler
	feedbackHandler   *handler.FeedbackHandler
	attachmentHandler *handler.AttachmentHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		authHandler:       params.AuthHandler,
		requestHandler:    params.RequestHandler,
		householdHandler:  params.HouseholdHandler,
		residentHandler:   params.ResidentHandler,
		feedbackHandler:   params.FeedbackHandler,
		attachmentHandler: params.AttachmentHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Request routes: any authenticated account may submit and read its own;
	// resolution is reviewer-only.
	requestGroup := api.Group("/requests")
	{
		requestGroup.POST("", r.requestHandler.Create)
		requestGroup.GET("/mine", r.requestHandler.ListMine)
		requestGroup.GET("/pending", r.requestHandler.ListPending, r.authMiddleware.RequireReviewer)
		requestGroup.GET("/:id", r.requestHandler.Get)
		requestGroup.POST("/:id/approve", r.requestHandler.Approve, r.authMiddleware.RequireReviewer)
		requestGroup.POST("/:id/reject", r.requestHandler.Reject, r.authMiddleware.RequireReviewer)
	}

	// Household administration is reviewer-only except reads.
	householdGroup := api.Group("/households")
	{
		householdGroup.GET("", r.householdHandler.List)
		householdGroup.POST("", r.householdHandler.Create, r.authMiddleware.RequireReviewer)
		householdGroup.GET("/:id", r.householdHandler.Get)
		householdGroup.POST("/:id/activate", r.householdHandler.Activate, r.authMiddleware.RequireReviewer)
		householdGroup.GET("/:id/residents", r.householdHandler.ListResidents)
		householdGroup.GET("/:id/history", r.householdHandler.ListAudit)
	}

	residentGroup := api.Group("/residents")
	{
		residentGroup.GET("/:id", r.residentHandler.Get)
		residentGroup.GET("/:id/temp-records", r.residentHandler.ListTempRecords)
		residentGroup.GET("/:id/life-events", r.residentHandler.ListLifeEvents)
	}

	feedbackGroup := api.Group("/feedback")
	{
		feedbackGroup.POST("", r.feedbackHandler.Submit)
		feedbackGroup.GET("/mine", r.feedbackHandler.ListMine)
		feedbackGroup.GET("", r.feedbackHandler.List, r.authMiddleware.RequireReviewer)
		feedbackGroup.POST("/:id/respond", r.feedbackHandler.Respond, r.authMiddleware.RequireReviewer)
	}

	attachmentGroup := api.Group("/attachments")
	{
		attachmentGroup.POST("", r.attachmentHandler.Upload)
		attachmentGroup.GET("/:name", r.attachmentHandler.Download)
	}
}
