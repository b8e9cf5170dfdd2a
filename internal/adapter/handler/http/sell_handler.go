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

type SellHandler struct {
	estimateService *services.EstimateService
	contentService  *services.ContentService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

func NewSellHandler(
	estimateService *services.EstimateService,
	contentService *services.ContentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SellHandler {
	return &SellHandler{
		estimateService: estimateService,
		contentService:  contentService,
		logger:          logger,
		metrics:         metrics,
	}
}

type EstimateRequest struct {
	Brand    string `json:"brand" example:"Hero"`
	Model    string `json:"model" example:"Splendor"`
	Variant  string `json:"variant" example:"110cc"`
	Year     string `json:"year" example:"2024"`
	KmsRange string `json:"kms" example:"Under 5,000"`
	Owner    string `json:"owner" example:"1st Owner"`
	Name     string `json:"name,omitempty" example:"Rahul"`
	Phone    string `json:"phone,omitempty" example:"9876543210"`
	Notes    string `json:"notes,omitempty"`
}

type EstimateResponse struct {
	EstimateID     string `json:"estimate_id"`
	EstimatedPrice int    `json:"estimated_price"`
}

// SellPageResponse carries the sell-page hero plus the bracket choices
// the estimate form offers.
type SellPageResponse struct {
	Banner        *domain.Banner `json:"banner"`
	KmsBrackets   []string       `json:"kms_brackets"`
	OwnerBrackets []string       `json:"owner_brackets"`
}

// @Summary Estimate a sale price
// @Description Compute an instant price estimate for a vehicle
// @Tags sell
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Vehicle details"
// @Success 200 {object} EstimateResponse "Estimate computed"
// @Failure 400 {object} validationErrorResponse "Missing or malformed field"
// @Router /sell/estimate [post]
func (h *SellHandler) Estimate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in estimate", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	input := services.EstimateInput{
		Brand:    req.Brand,
		Model:    req.Model,
		Variant:  req.Variant,
		Year:     req.Year,
		KmsRange: req.KmsRange,
		Owner:    req.Owner,
		Name:     req.Name,
		Phone:    req.Phone,
		Notes:    req.Notes,
	}
	// Estimates are open to anonymous visitors; a logged-in submission
	// is attributed to the account.
	if payload, exists := getAuthPayload(c, authorizationPayloadKey); exists {
		input.UserID = &payload.UserID
	}

	estimate, err := h.estimateService.Estimate(c.Request.Context(), input)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			newValidationErrorResponse(c, http.StatusBadRequest, vErr.Field, vErr.Message)
			return
		}
		h.logger.Error("Failed to compute estimate", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to compute estimate")
		return
	}

	c.JSON(http.StatusOK, EstimateResponse{
		EstimateID:     estimate.ID.String(),
		EstimatedPrice: estimate.EstimatedPrice,
	})
}

// @Summary Sell page content
// @Description Sell-page hero banner and estimate form brackets
// @Tags sell
// @Accept json
// @Produce json
// @Success 200 {object} SellPageResponse "Sell page content"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /content/sell-banner [get]
func (h *SellHandler) GetSellPage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	banner, err := h.contentService.GetSellBanner(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load sell page")
		return
	}

	c.JSON(http.StatusOK, SellPageResponse{
		Banner:        banner,
		KmsBrackets:   domain.KmsBrackets,
		OwnerBrackets: domain.OwnerBrackets,
	})
}
