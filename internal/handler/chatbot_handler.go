package handler

import (
	"net/http"

	"wanderwith/internal/model"
	"wanderwith/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatbotHandler handles travel assistant messages
type ChatbotHandler struct {
	service service.ChatbotService
}

// NewChatbotHandler creates a new ChatbotHandler
func NewChatbotHandler(s service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{service: s}
}

func (h *ChatbotHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.ChatResponse{Response: h.service.Reply(req.Message)})
}

// RegisterChatbotRoutes registers chatbot routes
func (h *ChatbotHandler) RegisterChatbotRoutes(rg *gin.RouterGroup) {
	rg.POST("/chatbot", h.Chat)
}
