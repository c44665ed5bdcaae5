package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/ai"
)

// AIHandler proxies short travel prompts to the configured model.
type AIHandler struct {
	client *ai.Client
}

func NewAIHandler(client *ai.Client) *AIHandler {
	return &AIHandler{client: client}
}

type suggestRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	System string `json:"system"`
}

// Suggest returns a model-generated suggestion for the prompt. Answers
// 501 when no API key is configured so clients can hide the feature.
func (h *AIHandler) Suggest(c *gin.Context) {
	if _, ok := requireEmail(c); !ok {
		return
	}

	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt_required"})
		return
	}

	text, err := h.client.Suggest(c.Request.Context(), req.Prompt, req.System)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
