// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	EventHandler    *handler.EventHandler
	OrderHandler    *handler.OrderHandler
	CheckoutHandler *handler.CheckoutHandler
	WebhookHandler  *handler.WebhookHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler *handler.CategoryHandler
	eventHandler    *handler.EventHandler
	orderHandler    *handler.OrderHandler
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler: params.CategoryHandler,
		eventHandler:    params.EventHandler,
		orderHandler:    params.OrderHandler,
		checkoutHandler: params.CheckoutHandler,
		webhookHandler:  params.WebhookHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public browsing routes
	e.GET("/categories", r.categoryHandler.ListCategories)
	e.GET("/events", r.eventHandler.ListEvents)
	e.GET("/events/:id", r.eventHandler.GetEvent)
	e.GET("/events/:id/related", r.eventHandler.ListRelatedEvents)

	// Webhook routes verify their own signatures; no session auth applies.
	webhookGroup := e.Group("/webhooks")
	{
		webhookGroup.POST("/identity", r.webhookHandler.HandleIdentityWebhook)
		webhookGroup.POST("/payment", r.webhookHandler.HandlePaymentWebhook)
	}

	// Routes that require an authenticated session
	authed := e.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.POST("/categories", r.categoryHandler.CreateCategory)

		authed.POST("/events", r.eventHandler.CreateEvent)
		authed.PUT("/events/:id", r.eventHandler.UpdateEvent)
		authed.DELETE("/events/:id", r.eventHandler.DeleteEvent)
		authed.GET("/events/:id/orders", r.orderHandler.ListOrdersByEvent)

		authed.GET("/profile/events", r.eventHandler.ListMyEvents)
		authed.GET("/profile/orders", r.orderHandler.ListMyOrders)
		authed.GET("/orders/:id/ticket", r.orderHandler.GetTicketQR)

		authed.POST("/checkout", r.checkoutHandler.Checkout)
	}
}
