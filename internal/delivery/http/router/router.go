// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfare/internal/delivery/http/middleware"
	"wayfare/internal/delivery/http/router/handler"
	"wayfare/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler   *handler.ProfileHandler
	CheckoutHandler  *handler.CheckoutHandler
	ItineraryHandler *handler.ItineraryHandler
	ReviewHandler    *handler.ReviewHandler
	PhotoHandler     *handler.PhotoHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler   *handler.ProfileHandler
	checkoutHandler  *handler.CheckoutHandler
	itineraryHandler *handler.ItineraryHandler
	reviewHandler    *handler.ReviewHandler
	photoHandler     *handler.PhotoHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:   params.ProfileHandler,
		checkoutHandler:  params.CheckoutHandler,
		itineraryHandler: params.ItineraryHandler,
		reviewHandler:    params.ReviewHandler,
		photoHandler:     params.PhotoHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Profile routes
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("/verification", r.profileHandler.RequestVerification)
	}
	e.PATCH("/profiles/:id/verification", r.profileHandler.SetVerification,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))

	// Checkout and settlement routes
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.BeginCheckout)
		checkoutGroup.POST("/verify", r.checkoutHandler.ConfirmPayment)
	}
	e.GET("/purchases", r.checkoutHandler.ListPurchases, r.authMiddleware.Authenticate)

	// Itinerary routes
	e.POST("/itineraries", r.itineraryHandler.CreateItinerary,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleInfluencer, entity.RoleAdmin))
	e.GET("/itineraries", r.itineraryHandler.ListItineraries)
	e.GET("/itineraries/:id", r.itineraryHandler.GetItinerary, r.authMiddleware.OptionalAuthenticate)
	e.POST("/itineraries/:id/approve", r.itineraryHandler.ApproveItinerary,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))

	// Review routes
	e.POST("/itineraries/:id/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
	e.GET("/itineraries/:id/reviews", r.reviewHandler.ListReviews)
	e.PATCH("/reviews/:id", r.reviewHandler.UpdateReview, r.authMiddleware.Authenticate)
	e.DELETE("/reviews/:id", r.reviewHandler.DeleteReview, r.authMiddleware.Authenticate)

	// Traveler photo routes
	e.POST("/itineraries/:id/photos", r.photoHandler.AddPhoto, r.authMiddleware.Authenticate)
	e.GET("/itineraries/:id/photos", r.photoHandler.ListPhotos)

	// Analytics routes
	e.POST("/itineraries/:id/views", r.analyticsHandler.RecordView)
	e.GET("/itineraries/:id/analytics", r.analyticsHandler.GetItineraryAnalytics, r.authMiddleware.Authenticate)
	e.GET("/analytics/summary", r.analyticsHandler.GetSummary, r.authMiddleware.Authenticate)
}
