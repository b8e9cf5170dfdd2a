package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"
	"github.com/driverp/bike-marketplace/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	catalogService *services.CatalogService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewListingHandler(
	catalogService *services.CatalogService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ListingHandler {
	return &ListingHandler{
		catalogService: catalogService,
		logger:         logger,
		metrics:        metrics,
	}
}

type ListingRequest struct {
	Category           string  `json:"category" binding:"required" example:"motorbike"`
	Brand              string  `json:"brand" binding:"required" example:"Royal Enfield"`
	Model              string  `json:"model" binding:"required" example:"Classic"`
	Variant            string  `json:"variant" example:"350cc"`
	MakeYear           int     `json:"make_year" binding:"required" example:"2021"`
	Kilometers         int     `json:"kilometers" example:"12000"`
	FuelType           string  `json:"fuel_type" binding:"required" example:"petrol"`
	PreviousOwner      string  `json:"previous_owner" binding:"required" example:"1st"`
	Price              float64 `json:"price" binding:"required" example:"165000"`
	Location           string  `json:"location" binding:"required" example:"Pune"`
	Refurbished        bool    `json:"refurbished"`
	RTOState           string  `json:"rto_state"`
	RTOCity            string  `json:"rto_city"`
	RegistrationYear   int     `json:"registration_year"`
	Transmission       string  `json:"transmission"`
	FinanceAvailable   bool    `json:"finance_available"`
	InsuranceAvailable bool    `json:"insurance_available"`
	Warranty           bool    `json:"warranty"`
	BikeColor          string  `json:"bike_color"`
	IgnitionType       string  `json:"ignition_type"`
	FrontBrakeType     string  `json:"front_brake_type"`
	RearBrakeType      string  `json:"rear_brake_type"`
	ABSAvailable       bool    `json:"abs_available"`
	OdometerType       string  `json:"odometer_type"`
	WheelType          string  `json:"wheel_type"`
	IsPublished        bool    `json:"is_published"`
}

type ListBikesResponse struct {
	Bikes  []*domain.Listing `json:"bikes"`
	Brands []string          `json:"brands"`
	Count  int               `json:"count"`
}

type BrandsResponse struct {
	Brands []string `json:"brands"`
}

type DeleteListingResponse struct {
	Message string `json:"message"`
}

// parseListingFilter reads the catalog query parameters. Malformed
// numeric values are dropped silently so a bad bound never breaks the
// whole catalog page.
func parseListingFilter(c *gin.Context) domain.ListingFilter {
	var filter domain.ListingFilter

	for _, raw := range c.QueryArray("category") {
		switch domain.Category(raw) {
		case domain.CategoryScooter, domain.CategoryMotorbike, domain.CategoryEV:
			filter.Categories = append(filter.Categories, domain.Category(raw))
		}
	}
	filter.Brands = append(filter.Brands, c.QueryArray("brand")...)

	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if raw := c.Query("min_year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinYear = &v
		}
	}
	if raw := c.Query("max_year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MaxYear = &v
		}
	}
	if raw := c.Query("max_kms"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MaxKilometers = &v
		}
	}
	if raw := c.Query("cc"); domain.CapacityBuckets[raw] {
		filter.CapacityBucket = raw
	}
	for _, raw := range c.QueryArray("fuel") {
		switch domain.FuelType(raw) {
		case domain.FuelPetrol, domain.FuelDiesel, domain.FuelElectric:
			filter.Fuels = append(filter.Fuels, domain.FuelType(raw))
		}
	}
	filter.Location = c.Query("location")
	filter.Query = c.Query("q")

	return filter
}

// @Summary List published bikes
// @Description Catalog listing with filters, free-text search and sorting
// @Tags catalog
// @Accept json
// @Produce json
// @Param category query []string false "Category filter" collectionFormat(multi)
// @Param brand query []string false "Brand filter" collectionFormat(multi)
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param min_year query int false "Minimum make year"
// @Param max_year query int false "Maximum make year"
// @Param max_kms query int false "Maximum kilometers"
// @Param cc query string false "Engine capacity bucket"
// @Param fuel query []string false "Fuel type filter" collectionFormat(multi)
// @Param location query string false "Location contains"
// @Param q query string false "Free-text search"
// @Param sort query string false "Sort key: newest, price_asc, price_desc, alpha"
// @Success 200 {object} ListBikesResponse "Catalog page"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /bikes [get]
func (h *ListingHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	filter := parseListingFilter(c)
	sort := domain.ParseSortKey(c.Query("sort"))

	listings, brands, err := h.catalogService.ListBikes(c.Request.Context(), filter, sort)
	if err != nil {
		h.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list bikes")
		return
	}

	c.JSON(http.StatusOK, ListBikesResponse{
		Bikes:  listings,
		Brands: brands,
		Count:  len(listings),
	})
}

// @Summary Get a bike listing
// @Description Fetch one listing by ID
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Listing ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} domain.Listing "Listing found"
// @Failure 400 {object} errorResponse "Invalid listing ID"
// @Failure 404 {object} errorResponse "Listing not found"
// @Router /bikes/{id} [get]
func (h *ListingHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	listingID := c.Param("id")

	listing, err := h.catalogService.GetListingByID(c.Request.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Listing not found")
			return
		}
		h.logger.Error("Failed to get listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// @Summary List brands
// @Description Distinct brands of published listings
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} BrandsResponse "Brand facet"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /bikes/brands [get]
func (h *ListingHandler) ListBrands(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	brands, err := h.catalogService.Brands(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list brands", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list brands")
		return
	}

	c.JSON(http.StatusOK, BrandsResponse{Brands: brands})
}

// @Summary Create a listing
// @Description Publish a bike for sale
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ListingRequest true "Listing data"
// @Success 201 {object} domain.Listing "Listing created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateListing", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create listing", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	listing := listingFromRequest(&req)
	listing.OwnerID = payload.UserID

	created, err := h.catalogService.CreateListing(c.Request.Context(), listing)
	if err != nil {
		h.logger.Error("Failed to create listing", map[string]interface{}{
			"error":    err.Error(),
			"owner_id": payload.UserID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Failed to create listing")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update a listing
// @Description Replace the attributes of an owned listing
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Param request body ListingRequest true "Listing data"
// @Success 200 {object} domain.Listing "Listing updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Listing not found"
// @Router /bikes/{id} [put]
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	listingID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to UpdateListing", map[string]interface{}{
			"listing_id": listingID,
			"ip":         c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	existing, err := h.catalogService.GetListingByID(c.Request.Context(), listingID)
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "Listing not found")
		return
	}

	if payload.Role != domain.Admin && payload.UserID != existing.OwnerID {
		h.logger.Warn("Access denied to update listing", map[string]interface{}{
			"requester_id": payload.UserID.String(),
			"owner_id":     existing.OwnerID.String(),
			"listing_id":   listingID,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update listing", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	parsedID, err := uuid.Parse(listingID)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	listing := listingFromRequest(&req)
	listing.ListingID = parsedID
	listing.OwnerID = existing.OwnerID

	updated, err := h.catalogService.UpdateListing(c.Request.Context(), listing)
	if err != nil {
		h.logger.Error("Failed to update listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Update failed")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Remove a listing
// @Description Unpublish an owned listing; records are kept for audit
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} DeleteListingResponse "Listing removed"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Listing not found"
// @Router /bikes/{id} [delete]
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	listingID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to DeleteListing", map[string]interface{}{
			"listing_id": listingID,
			"ip":         c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	existing, err := h.catalogService.GetListingByID(c.Request.Context(), listingID)
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "Listing not found")
		return
	}

	if payload.Role != domain.Admin && payload.UserID != existing.OwnerID {
		h.logger.Warn("Access denied to delete listing", map[string]interface{}{
			"requester_id": payload.UserID.String(),
			"owner_id":     existing.OwnerID.String(),
			"listing_id":   listingID,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	if err := h.catalogService.UnpublishListing(c.Request.Context(), listingID); err != nil {
		h.logger.Error("Failed to remove listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, DeleteListingResponse{
		Message: "Listing removed successfully",
	})
}

func listingFromRequest(req *ListingRequest) *domain.Listing {
	return &domain.Listing{
		Category:           domain.Category(req.Category),
		Brand:              req.Brand,
		Model:              req.Model,
		Variant:            req.Variant,
		MakeYear:           req.MakeYear,
		Kilometers:         req.Kilometers,
		FuelType:           domain.FuelType(req.FuelType),
		PreviousOwner:      domain.OwnerCount(req.PreviousOwner),
		Price:              req.Price,
		Location:           req.Location,
		Refurbished:        req.Refurbished,
		RTOState:           req.RTOState,
		RTOCity:            req.RTOCity,
		RegistrationYear:   req.RegistrationYear,
		Transmission:       domain.Transmission(req.Transmission),
		FinanceAvailable:   req.FinanceAvailable,
		InsuranceAvailable: req.InsuranceAvailable,
		Warranty:           req.Warranty,
		BikeColor:          req.BikeColor,
		IgnitionType:       domain.IgnitionType(req.IgnitionType),
		FrontBrakeType:     domain.BrakeType(req.FrontBrakeType),
		RearBrakeType:      domain.BrakeType(req.RearBrakeType),
		ABSAvailable:       req.ABSAvailable,
		OdometerType:       req.OdometerType,
		WheelType:          domain.WheelType(req.WheelType),
		IsPublished:        req.IsPublished,
	}
}
