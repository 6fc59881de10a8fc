package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

type PlacesSearchController struct {
	placesSearchService services.PlacesSearchServiceInterface
}

func NewPlacesSearchController(placesSearchService services.PlacesSearchServiceInterface) *PlacesSearchController {
	return &PlacesSearchController{placesSearchService: placesSearchService}
}

// POST /api/places-search
func (p *PlacesSearchController) SearchHandler(c *gin.Context) {
	var req request_models.PlacesSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	places, err := p.placesSearchService.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrLLMUnavailable) {
			utils.RespondErrorWithData(c, http.StatusBadGateway, "Failed to search places", response_models.PlacesSearchResponse{
				Places:       []response_models.AIPlace{},
				SearchParams: req,
			})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PlacesSearchResponse{
		Places:       places,
		SearchParams: req,
	}, "")
}
