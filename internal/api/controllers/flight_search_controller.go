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

type FlightSearchController struct {
	flightSearchService services.FlightSearchServiceInterface
}

func NewFlightSearchController(flightSearchService services.FlightSearchServiceInterface) *FlightSearchController {
	return &FlightSearchController{flightSearchService: flightSearchService}
}

// POST /api/flights-search
func (f *FlightSearchController) SearchHandler(c *gin.Context) {
	var req request_models.FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "from, to and departureDate are required")
		return
	}

	flights, err := f.flightSearchService.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrLLMUnavailable) || errors.Is(err, utils.ErrUnexpectedBehaviorOfAI) {
			utils.RespondErrorWithData(c, http.StatusBadGateway, "Failed to search flights", response_models.FlightSearchResponse{
				Flights:    []response_models.AIFlight{},
				SearchData: req,
			})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FlightSearchResponse{
		Flights:    flights,
		Count:      len(flights),
		SearchData: req,
	}, "")
}
