package db_models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Flight rows are denormalized: airline and airport columns are copied onto
// each flight so a search is a single-table query.
type Flight struct {
	BaseModel
	AirlineCode          string    `gorm:"size:3;index" json:"airline_code"`
	AirlineName          string    `json:"airline_name"`
	AirlineLogo          string    `json:"airline_logo"`
	FlightNumber         string    `json:"flight_number"`
	DepartureAirportCode string    `gorm:"size:3;index" json:"departure_airport_code"`
	DepartureAirportName string    `json:"departure_airport_name"`
	DepartureCity        string    `gorm:"index" json:"departure_city"`
	ArrivalAirportCode   string    `gorm:"size:3;index" json:"arrival_airport_code"`
	ArrivalAirportName   string    `json:"arrival_airport_name"`
	ArrivalCity          string    `gorm:"index" json:"arrival_city"`
	DepartureTime        time.Time `json:"departure_time"`
	ArrivalTime          time.Time `json:"arrival_time"`
	DurationMinutes      int       `json:"duration_minutes"`
	AircraftType         string    `json:"aircraft_type"`
	PriceEconomy         float64   `json:"price_economy"`
	PriceBusiness        float64   `json:"price_business"`
	PriceFirst           float64   `json:"price_first"`
	AvailableSeats       int       `json:"available_seats"`
	Stops                int       `json:"stops"`
}

type Hotel struct {
	BaseModel
	ChainName   string         `json:"chain_name"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `gorm:"index" json:"city"`
	Country     string         `json:"country"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	StarRating  int            `json:"star_rating"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	Description string         `json:"description"`
	Amenities   pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Website     string         `json:"website"`

	Rooms []HotelRoom `gorm:"foreignKey:HotelID" json:"rooms"`
}

type HotelRoom struct {
	BaseModel
	HotelID        uuid.UUID      `gorm:"type:uuid;index" json:"hotel_id"`
	RoomType       string         `json:"room_type"`
	Description    string         `json:"description"`
	MaxOccupancy   int            `json:"max_occupancy"`
	SizeSqm        float64        `json:"size_sqm"`
	Amenities      pq.StringArray `gorm:"type:text[]" json:"amenities"`
	PricePerNight  float64        `json:"price_per_night"`
	AvailableRooms int            `json:"available_rooms"`
}

type Restaurant struct {
	BaseModel
	Name         string          `json:"name"`
	CuisineType  string          `json:"cuisine_type"`
	Address      string          `json:"address"`
	City         string          `gorm:"index" json:"city"`
	Country      string          `json:"country"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"review_count"`
	PriceRange   string          `json:"price_range"`
	Description  string          `json:"description"`
	Features     pq.StringArray  `gorm:"type:text[]" json:"features"`
	Menu         json.RawMessage `gorm:"type:jsonb" json:"menu"`
	Phone        string          `json:"phone"`
	Website      string          `json:"website"`
	OpeningHours json.RawMessage `gorm:"type:jsonb" json:"opening_hours"`
	Images       pq.StringArray  `gorm:"type:text[]" json:"images"`
}

type Place struct {
	BaseModel
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Address         string          `json:"address"`
	City            string          `gorm:"index" json:"city"`
	Country         string          `json:"country"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	Rating          float64         `json:"rating"`
	ReviewCount     int             `json:"review_count"`
	Description     string          `json:"description"`
	Highlights      pq.StringArray  `gorm:"type:text[]" json:"highlights"`
	Features        pq.StringArray  `gorm:"type:text[]" json:"features"`
	OpeningHours    json.RawMessage `gorm:"type:jsonb" json:"opening_hours"`
	TicketPrice     float64         `json:"ticket_price"`
	DurationHours   float64         `json:"duration_hours"`
	BestTimeToVisit string          `json:"best_time_to_visit"`
	HowToGetThere   string          `json:"how_to_get_there"`
	Images          pq.StringArray  `gorm:"type:text[]" json:"images"`
	Website         string          `json:"website"`
}

// CatalogModels lists the tables migrated at startup.
var CatalogModels = []any{&Flight{}, &Hotel{}, &HotelRoom{}, &Restaurant{}, &Place{}}
