package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fleet-service/internal/model"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.GET("/drivers", handler.listDrivers)
		protected.POST("/drivers", handler.createDriver)
		protected.GET("/drivers/:id", handler.getDriver)
		protected.PUT("/drivers/:id", handler.updateDriver)
		protected.DELETE("/drivers/:id", handler.deleteDriver)
		protected.PUT("/drivers/:id/status", handler.updateReviewStatus(model.ReviewEntityDriver))
		protected.GET("/drivers/:id/status-history", handler.reviewHistory(model.ReviewEntityDriver))
		protected.GET("/drivers/:id/leaves", handler.listDriverLeaves)
		protected.POST("/drivers/:id/leaves", handler.createDriverLeave)
		protected.DELETE("/leaves/:id", handler.deleteLeave)

		protected.GET("/vehicles", handler.listVehicles)
		protected.POST("/vehicles", handler.createVehicle)
		protected.GET("/vehicles/:id", handler.getVehicle)
		protected.PUT("/vehicles/:id", handler.updateVehicle)
		protected.PUT("/vehicles/:id/features", handler.updateVehicleFeatures)
		protected.DELETE("/vehicles/:id", handler.deleteVehicle)
		protected.PUT("/vehicles/:id/status", handler.updateReviewStatus(model.ReviewEntityVehicle))
		protected.GET("/vehicles/:id/status-history", handler.reviewHistory(model.ReviewEntityVehicle))

		protected.GET("/fleet-partners", handler.listFleetPartners)
		protected.POST("/fleet-partners", handler.createFleetPartner)
		protected.GET("/fleet-partners/:id", handler.getFleetPartner)
		protected.PUT("/fleet-partners/:id", handler.updateFleetPartner)
		protected.DELETE("/fleet-partners/:id", handler.deleteFleetPartner)
		protected.PUT("/fleet-partners/:id/status", handler.updateReviewStatus(model.ReviewEntityFleetCompany))
		protected.GET("/fleet-partners/:id/status-history", handler.reviewHistory(model.ReviewEntityFleetCompany))

		protected.GET("/trips", handler.listTrips)
		protected.GET("/trips/:id", handler.getTrip)

		protected.GET("/payouts", handler.listPayouts)
		protected.GET("/payouts/:id", handler.getPayout)
		protected.PUT("/payouts/:id/complete", handler.completePayout)

		protected.GET("/notifications", handler.listNotifications)
		protected.PUT("/notifications/:id/read", handler.markNotificationRead)

		protected.POST("/documents", handler.uploadDocument)
		protected.GET("/documents", handler.listDocuments)

		protected.GET("/dashboard/documents", handler.documentDashboard)

		protected.GET("/ws", handler.serveWS)
	}

	return router
}
