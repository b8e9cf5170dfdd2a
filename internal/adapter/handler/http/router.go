package http

import (
	"net/http"

	"github.com/driverp/bike-marketplace/internal/config"
	"github.com/driverp/bike-marketplace/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	listingHandler *ListingHandler,
	testRideHandler *TestRideHandler,
	sellHandler *SellHandler,
	contentHandler *ContentHandler,
	contactHandler *ContactHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Catalog routes; browsing needs no account
	bikes := router.Group("/bikes")
	{
		bikes.GET("", listingHandler.ListBikes)
		bikes.GET("/brands", listingHandler.ListBrands)
		bikes.GET("/:id", listingHandler.GetBike)

		authed := bikes.Group("")
		authed.Use(AuthMiddleware(tokenService))
		{
			authed.POST("", listingHandler.CreateListing)
			authed.PUT("/:id", listingHandler.UpdateListing)
			authed.DELETE("/:id", listingHandler.DeleteListing)
			authed.POST("/:id/test-ride", testRideHandler.RequestTestRide)
		}
	}

	// Test ride routes
	testRides := router.Group("/test-rides")
	testRides.Use(AuthMiddleware(tokenService))
	{
		testRides.GET("/my", testRideHandler.GetMyTestRides)
	}

	// Sell routes; anonymous estimates are attributed when a token is present
	sell := router.Group("/sell")
	sell.Use(OptionalAuthMiddleware(tokenService))
	{
		sell.POST("/estimate", sellHandler.Estimate)
	}

	// Content routes
	content := router.Group("/content")
	{
		content.GET("/home", contentHandler.GetHome)
		content.GET("/about", contentHandler.GetAbout)
		content.GET("/sell-banner", sellHandler.GetSellPage)
	}

	// Contact form
	router.POST("/contact", contactHandler.Submit)

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(tokenService), AdminMiddleware())
	{
		admin.GET("/test-rides", testRideHandler.ListTestRides)
		admin.PUT("/test-rides/:id/status", testRideHandler.ChangeStatus)
	}

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
