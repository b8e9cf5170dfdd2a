package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"
	"github.com/driverp/bike-marketplace/internal/core/services"

	"github.com/gin-gonic/gin"
)

type TestRideHandler struct {
	testRideService *services.TestRideService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

func NewTestRideHandler(
	testRideService *services.TestRideService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TestRideHandler {
	return &TestRideHandler{
		testRideService: testRideService,
		logger:          logger,
		metrics:         metrics,
	}
}

type TestRideRequest struct {
	Phone        string     `json:"phone" example:"9876543210"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Notes        string     `json:"notes" example:"Available on weekends"`
}

type TestRideListResponse struct {
	TestRides []*domain.TestRide `json:"test_rides"`
	Count     int                `json:"count"`
}

type TestRideStatusRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
}

// @Summary Request a test ride
// @Description Book a pending test ride on a listing
// @Tags test-rides
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Param request body TestRideRequest true "Booking data"
// @Success 201 {object} domain.TestRide "Test ride booked"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Listing not found"
// @Failure 409 {object} errorResponse "Conflicting booking"
// @Router /bikes/{id}/test-ride [post]
func (h *TestRideHandler) RequestTestRide(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	listingID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to RequestTestRide", map[string]interface{}{
			"listing_id": listingID,
			"ip":         c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req TestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in test ride request", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ride, err := h.testRideService.RequestTestRide(
		c.Request.Context(), listingID, payload.UserID, req.Phone, req.ScheduledFor, req.Notes,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			newErrorResponse(c, http.StatusNotFound, "Listing not found")
		case errors.Is(err, domain.ErrOwnBooking):
			newErrorResponse(c, http.StatusConflict, "You cannot book a test ride for your own listing")
		case errors.Is(err, domain.ErrDuplicatePending):
			newErrorResponse(c, http.StatusConflict, "You already have a pending test ride for this listing")
		default:
			h.logger.Error("Failed to book test ride", map[string]interface{}{
				"error":      err.Error(),
				"listing_id": listingID,
				"user_id":    payload.UserID,
			})
			newErrorResponse(c, http.StatusBadRequest, "Failed to book test ride")
		}
		return
	}

	c.JSON(http.StatusCreated, ride)
}

// @Summary My test rides
// @Description List the authenticated user's test ride requests
// @Tags test-rides
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} TestRideListResponse "Test rides"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /test-rides/my [get]
func (h *TestRideHandler) GetMyTestRides(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyTestRides", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rides, err := h.testRideService.ListMyTestRides(c.Request.Context(), payload.UserID)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list test rides")
		return
	}

	c.JSON(http.StatusOK, TestRideListResponse{
		TestRides: rides,
		Count:     len(rides),
	})
}

// @Summary List test rides by status
// @Description Administrative view of test ride requests
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param status query string true "Status filter: pending, confirmed, completed, cancelled"
// @Success 200 {object} TestRideListResponse "Test rides"
// @Failure 400 {object} errorResponse "Unknown status"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Admin access required"
// @Router /admin/test-rides [get]
func (h *TestRideHandler) ListTestRides(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	status := domain.TestRideStatus(c.DefaultQuery("status", string(domain.TestRidePending)))

	rides, err := h.testRideService.ListByStatus(c.Request.Context(), status)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			newValidationErrorResponse(c, http.StatusBadRequest, vErr.Field, vErr.Message)
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list test rides")
		return
	}

	c.JSON(http.StatusOK, TestRideListResponse{
		TestRides: rides,
		Count:     len(rides),
	})
}

// @Summary Change test ride status
// @Description Administrative transition of a test ride request
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Test ride ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Param request body TestRideStatusRequest true "Target status"
// @Success 200 {object} domain.TestRide "Status changed"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Admin access required"
// @Failure 404 {object} errorResponse "Test ride not found"
// @Failure 409 {object} errorResponse "Transition not allowed"
// @Router /admin/test-rides/{id}/status [put]
func (h *TestRideHandler) ChangeStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rideID := c.Param("id")

	var req TestRideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in status change", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ride, err := h.testRideService.ChangeStatus(c.Request.Context(), rideID, domain.TestRideStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTestRideNotFound):
			newErrorResponse(c, http.StatusNotFound, "Test ride not found")
		case errors.Is(err, domain.ErrInvalidTransition):
			newErrorResponse(c, http.StatusConflict, "Transition not allowed")
		default:
			h.logger.Error("Failed to change test ride status", map[string]interface{}{
				"error":        err.Error(),
				"test_ride_id": rideID,
			})
			newErrorResponse(c, http.StatusBadRequest, "Failed to change status")
		}
		return
	}

	c.JSON(http.StatusOK, ride)
}
