package http

import (
	"net/http"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/ports"
	"github.com/driverp/bike-marketplace/internal/core/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService *services.ContentService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewContentHandler(
	contentService *services.ContentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Homepage content
// @Description Site brand, navigation, hero and homepage sections
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} services.HomeContent "Homepage content"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /content/home [get]
func (h *ContentHandler) GetHome(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	content, err := h.contentService.GetHomeContent(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load homepage content", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load content")
		return
	}

	c.JSON(http.StatusOK, content)
}

// @Summary About page content
// @Description Site brand, navigation and about sections
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} services.AboutContent "About page content"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /content/about [get]
func (h *ContentHandler) GetAbout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	content, err := h.contentService.GetAboutContent(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load about content", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load content")
		return
	}

	c.JSON(http.StatusOK, content)
}
