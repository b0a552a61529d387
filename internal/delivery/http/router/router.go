// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"happnings/internal/delivery/http/middleware"
	"happnings/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EventHandler    *handler.EventHandler
	FavoriteHandler *handler.FavoriteHandler
	ReminderHandler *handler.ReminderHandler
	UserHandler     *handler.UserHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	eventHandler    *handler.EventHandler
	favoriteHandler *handler.FavoriteHandler
	reminderHandler *handler.ReminderHandler
	userHandler     *handler.UserHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		eventHandler:    params.EventHandler,
		favoriteHandler: params.FavoriteHandler,
		reminderHandler: params.ReminderHandler,
		userHandler:     params.UserHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Discovery routes are public.
	api.GET("/categories", r.eventHandler.ListCategories)
	api.GET("/events", r.eventHandler.SearchEvents)
	api.GET("/events/:id", r.eventHandler.GetEvent)
	api.GET("/events/:id/qr", r.eventHandler.GetEventQR)

	// Account routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/refresh", r.userHandler.Refresh)
		userGroup.POST("/logout", r.userHandler.Logout)

		meGroup := userGroup.Group("/me")
		meGroup.Use(r.authMiddleware.Authenticate)
		meGroup.GET("", r.userHandler.GetProfile)
		meGroup.PUT("", r.userHandler.UpdateProfile)
		meGroup.DELETE("", r.userHandler.DeleteAccount)
	}

	// Favorite routes require authentication.
	favoriteGroup := api.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.POST("", r.favoriteHandler.AddFavorite)
		favoriteGroup.GET("", r.favoriteHandler.ListFavorites)
		favoriteGroup.DELETE("/:id", r.favoriteHandler.RemoveFavorite)
	}

	// Reminder routes require authentication.
	reminderGroup := api.Group("/notifications")
	reminderGroup.Use(r.authMiddleware.Authenticate)
	{
		reminderGroup.POST("", r.reminderHandler.CreateReminder)
		reminderGroup.GET("", r.reminderHandler.ListReminders)
		reminderGroup.PUT("/:id", r.reminderHandler.UpdateReminder)
		reminderGroup.DELETE("/:id", r.reminderHandler.CancelReminder)
	}

	// Device routes require authentication.
	deviceGroup := api.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.ListDevices)
		deviceGroup.DELETE("/:token", r.deviceHandler.UnregisterDevice)
	}
}
