package controllers

import (
	"github.com/gin-gonic/gin"

	"voyage/internal/models/response_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

type HealthController struct {
	llmReady     bool
	catalogReady bool
}

func NewHealthController(pipeline services.LLMPipeline, repos *services.CatalogRepositories) *HealthController {
	return &HealthController{
		llmReady:     pipeline.Available(),
		catalogReady: repos != nil,
	}
}

// GET /health. The service stays healthy without an LLM or database; those
// only change which paths are served from fallbacks.
func (h *HealthController) HealthHandler(c *gin.Context) {
	status := response_models.HealthStatus{Status: "ok", LLM: "configured", Catalog: "configured"}
	if !h.llmReady {
		status.LLM = "mock"
	}
	if !h.catalogReady {
		status.Catalog = "unavailable"
	}
	utils.RespondSuccess(c, status, "")
}
