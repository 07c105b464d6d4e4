package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/dto"
	"github.com/SscSPs/finsight_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// insightHandler handles the AI-backed endpoints.
type insightHandler struct {
	insightService portssvc.InsightSvcFacade
}

func newInsightHandler(is portssvc.InsightSvcFacade) *insightHandler {
	return &insightHandler{
		insightService: is,
	}
}

// registerInsightRoutes registers the insight and chat routes. Calls that reach
// the AI service go through aiLimiter when it is set.
func registerInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade, aiLimiter *limiter.Limiter) {
	h := newInsightHandler(insightService)

	limited := rg.Group("")
	if aiLimiter != nil {
		limited.Use(middleware.RateLimit(aiLimiter))
	}
	limited.GET("/insights", h.getInsights)
	limited.POST("/chat", h.sendMessage)

	rg.GET("/chat", h.listMessages)
}

// getInsights godoc
// @Summary Generate insights
// @Description Asks the AI service for short findings about the loaded ledger. Failures yield a single neutral card.
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.InsightsResponse
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Failed to generate insights"
// @Router /insights [get]
func (h *insightHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	insights, err := h.insightService.GenerateInsights(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate insights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights"})
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: insights})
}

// sendMessage godoc
// @Summary Chat with the assistant
// @Description Sends a message to the assistant grounded on the loaded ledger
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /chat [post]
func (h *insightHandler) sendMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SendMessage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reply, err := h.insightService.SendMessage(c.Request.Context(), req.Message)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Reply: *reply})
}

// listMessages godoc
// @Summary Chat transcript
// @Description Lists the conversation with the assistant, oldest first
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.ChatHistoryResponse
// @Router /chat [get]
func (h *insightHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	messages, err := h.insightService.ListMessages(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list chat messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, dto.ChatHistoryResponse{Messages: messages})
}
