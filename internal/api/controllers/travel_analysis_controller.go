package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

type TravelAnalysisController struct {
	analysisService services.TravelAnalysisServiceInterface
	pdfService      services.ItineraryPDFServiceInterface
}

func NewTravelAnalysisController(
	analysisService services.TravelAnalysisServiceInterface,
	pdfService services.ItineraryPDFServiceInterface,
) *TravelAnalysisController {
	return &TravelAnalysisController{
		analysisService: analysisService,
		pdfService:      pdfService,
	}
}

// POST /api/ai-travel-analysis
func (t *TravelAnalysisController) AnalyzeHandler(c *gin.Context) {
	var req request_models.TravelAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Request) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Travel request is required")
		return
	}

	resp, err := t.analyze(c, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Travel analysis generated")
}

// POST /api/ai-travel-analysis/pdf
func (t *TravelAnalysisController) ExportPDFHandler(c *gin.Context) {
	var req request_models.TravelAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Request) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Travel request is required")
		return
	}

	resp, err := t.analyze(c, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	doc, err := t.pdfService.Render(&resp.ComprehensiveAnalysis, resp.Summary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", slug(resp.Analysis.Destinations.Primary))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// analyze runs the comprehensive analysis and then the summary, in that order.
func (t *TravelAnalysisController) analyze(c *gin.Context, req request_models.TravelAnalysisRequest) (*response_models.TravelAnalysisResponse, error) {
	ctx := c.Request.Context()

	result, err := t.analysisService.GenerateComprehensiveAnalysis(ctx, req.Request, req.From, req.To)
	if err != nil {
		return nil, err
	}

	return &response_models.TravelAnalysisResponse{
		ComprehensiveAnalysis: *result,
		Summary:               t.analysisService.GenerateTravelSummary(ctx, req.Request),
	}, nil
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}), "-")
	if s == "" {
		return "trip"
	}
	return s
}
