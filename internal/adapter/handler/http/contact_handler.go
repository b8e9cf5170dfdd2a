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

type ContactHandler struct {
	contactService *services.ContactService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewContactHandler(
	contactService *services.ContactService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
		metrics:        metrics,
	}
}

type ContactRequest struct {
	Name    string `json:"name" example:"Rahul Sharma"`
	Email   string `json:"email" example:"rahul@example.com"`
	Phone   string `json:"phone" example:"9876543210"`
	Reason  string `json:"reason" example:"Buy a Bike"`
	Channel string `json:"channel" example:"Instagram"`
	Message string `json:"message" example:"Looking for a commuter bike under one lakh."`
}

type ContactResponse struct {
	Message string `json:"message"`
}

// @Summary Submit the contact form
// @Description Validate and relay a contact form submission by email
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form data"
// @Success 200 {object} ContactResponse "Message relayed"
// @Failure 400 {object} validationErrorResponse "Rejected field"
// @Failure 500 {object} errorResponse "Delivery failed"
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in contact form", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	err := h.contactService.Submit(c.Request.Context(), services.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Reason:  req.Reason,
		Channel: req.Channel,
		Message: req.Message,
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			newValidationErrorResponse(c, http.StatusBadRequest, vErr.Field, vErr.Message)
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to deliver message")
		return
	}

	c.JSON(http.StatusOK, ContactResponse{
		Message: "Thank you for reaching out. We will get back to you shortly.",
	})
}
