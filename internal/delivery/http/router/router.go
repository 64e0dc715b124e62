// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"companion/internal/delivery/http/middleware"
	"companion/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ScheduleHandler *handler.ScheduleHandler
	FavoriteHandler *handler.FavoriteHandler
	ReminderHandler *handler.ReminderHandler
	ExportHandler   *handler.ExportHandler
	ProfileHandler  *handler.ProfileHandler
	ToastHandler    *handler.ToastHandler
	VenueHandler    *handler.VenueHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signin", r.params.AuthHandler.BeginSignIn)
		authGroup.GET("/verify", r.params.AuthHandler.VerifySignIn)
		authGroup.POST("/signout", r.params.AuthHandler.SignOut, r.params.AuthMiddleware.Authenticate)
	}

	// Schedule browsing is anonymous
	scheduleGroup := e.Group("/schedule")
	{
		scheduleGroup.GET("", r.params.ScheduleHandler.Search)
		scheduleGroup.GET("/tracks", r.params.ScheduleHandler.ListTracks)
		scheduleGroup.GET("/speakers", r.params.ScheduleHandler.ListSpeakers)
	}

	// Event routes: details and exports are anonymous
	eventGroup := e.Group("/events")
	{
		eventGroup.GET("/:id", r.params.ScheduleHandler.GetEvent)
		eventGroup.GET("/:id/calendar", r.params.ExportHandler.DownloadCalendar)
		eventGroup.GET("/:id/qr", r.params.ExportHandler.EventQR)
	}

	// Favorites mutate server state and require a session; the optional
	// variant on reads lets an anonymous client see the pre-auth cache.
	favoriteGroup := e.Group("/favorites")
	{
		favoriteGroup.GET("", r.params.FavoriteHandler.List, r.params.AuthMiddleware.AuthenticateOptional)
		favoriteGroup.POST("/reload", r.params.FavoriteHandler.Reload, r.params.AuthMiddleware.Authenticate)
		favoriteGroup.POST("/:id/toggle", r.params.FavoriteHandler.Toggle, r.params.AuthMiddleware.Authenticate)
	}

	// Reminders are device-local and work without a session
	reminderGroup := e.Group("/reminders")
	{
		reminderGroup.GET("", r.params.ReminderHandler.Status)
		reminderGroup.PUT("/opt-in", r.params.ReminderHandler.SetOptIn)
		reminderGroup.POST("/events/:id", r.params.ReminderHandler.ScheduleEvent)
	}

	// Local profile
	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("", r.params.ProfileHandler.Get)
		profileGroup.PUT("", r.params.ProfileHandler.Save)
	}

	// In-app toasts and the venue floor plan
	e.GET("/toasts", r.params.ToastHandler.List)
	venueGroup := e.Group("/venues")
	{
		venueGroup.GET("", r.params.VenueHandler.List)
		venueGroup.GET("/locate", r.params.VenueHandler.Locate)
	}
}
