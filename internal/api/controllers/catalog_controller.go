package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GET /api/flights?from=&to=&departure_date=&return_date=&passengers=&class=
func (ct *CatalogController) SearchFlightsHandler(c *gin.Context) {
	var params request_models.FlightSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	flights, err := ct.catalogService.SearchFlights(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewCatalogPage(flights), "")
}

// GET /api/hotels?location=&checkin=&checkout=&guests=&rooms=
func (ct *CatalogController) SearchHotelsHandler(c *gin.Context) {
	var params request_models.HotelSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	hotels, err := ct.catalogService.SearchHotels(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewCatalogPage(hotels), "")
}

// GET /api/restaurants?location=&cuisine=&price_range=
func (ct *CatalogController) SearchRestaurantsHandler(c *gin.Context) {
	var params request_models.RestaurantSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	restaurants, err := ct.catalogService.SearchRestaurants(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewCatalogPage(restaurants), "")
}

// GET /api/places?location=&category=
func (ct *CatalogController) SearchPlacesHandler(c *gin.Context) {
	var params request_models.PlaceSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	places, err := ct.catalogService.SearchPlaces(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewCatalogPage(places), "")
}

func (ct *CatalogController) GetFlightHandler(c *gin.Context) {
	flight, err := ct.catalogService.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, flight, "")
}

func (ct *CatalogController) GetHotelHandler(c *gin.Context) {
	hotel, err := ct.catalogService.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotel, "")
}

func (ct *CatalogController) GetRestaurantHandler(c *gin.Context) {
	restaurant, err := ct.catalogService.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurant, "")
}

func (ct *CatalogController) GetPlaceHandler(c *gin.Context) {
	place, err := ct.catalogService.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "")
}
