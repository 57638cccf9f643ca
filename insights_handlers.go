package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/mis_backend/config"
	"github.com/volttrack/mis_backend/insights"
)

// POST /api/insights
//
// Collaborator failures never touch record state: the UI gets a retryable
// 502 and the dataset stays as it was.
func misInsightsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := aiService.Load()
		if svc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI insights are not configured (set GEMINI_API_KEY)"})
			return
		}

		result, err := svc.MisInsights(c.Request.Context(), recordStore.Load().All())
		if err != nil {
			writeCollaboratorError(c, "misInsightsHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /api/assistant {"question": "..."}
func assistantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := aiService.Load()
		if svc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI assistant is not configured (set GEMINI_API_KEY)"})
			return
		}

		var body struct {
			Question string `json:"question"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Question) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
			return
		}

		answer, err := svc.Ask(c.Request.Context(), body.Question, recordStore.Load().All())
		if err != nil {
			writeCollaboratorError(c, "assistantHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"answer": answer})
	}
}

func writeCollaboratorError(c *gin.Context, funcName string, err error) {
	var cerr *insights.CollaboratorError
	if errors.As(err, &cerr) {
		config.LogError(config.GetLogger(), "insights_handlers.go", funcName, cerr.Op, nil, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "the AI service is unavailable, please retry"})
		return
	}
	config.LogError(config.GetLogger(), "insights_handlers.go", funcName, "unexpected", nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
