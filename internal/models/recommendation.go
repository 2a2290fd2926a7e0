package models

// TripRecommendation is the itinerary proposal sent to the traveler's app.
// JSON names are the mobile client's contract.
type TripRecommendation struct {
	ID           string        `json:"id"`
	Overview     string        `json:"overview"`
	Destinations []Destination `json:"destinations"`
	Logistics    Logistics     `json:"logistics"`
	// CostSummary is an operator-written display note. Computed totals are
	// never stored in the document.
	CostSummary string `json:"costSummary,omitempty"`
}

type Destination struct {
	ID            string `json:"id"`
	CityName      string `json:"cityName"`
	ArrivalDate   string `json:"arrivalDate,omitempty"`
	DepartureDate string `json:"departureDate,omitempty"`
	// Legacy date fields, read when the arrival/departure pair is missing.
	CheckInDate    string `json:"checkInDate,omitempty"`
	CheckOutDate   string `json:"checkOutDate,omitempty"`
	NumberOfNights Number `json:"numberOfNights,omitempty"`

	AccommodationOptions   []AccommodationOption      `json:"accommodationOptions"`
	RecommendedActivities  []ActivityRecommendation   `json:"recommendedActivities"`
	RecommendedRestaurants []RestaurantRecommendation `json:"recommendedRestaurants"`
}

type AccommodationOption struct {
	ID       string   `json:"id"`
	Priority Priority `json:"priority"`
	Hotel    *Hotel   `json:"hotel,omitempty"`
}

type Hotel struct {
	Name           string `json:"name"`
	StarRating     Number `json:"starRating,omitempty"`
	PricePerNight  Number `json:"pricePerNight"`
	PointsPerNight Number `json:"pointsPerNight,omitempty"`
	LoyaltyProgram string `json:"loyaltyProgram,omitempty"`
	Location       string `json:"location,omitempty"`
	BookingURL     string `json:"bookingUrl,omitempty"`
	Description    string `json:"description,omitempty"`
	TripAdvisorID  string `json:"tripAdvisorId,omitempty"`
	TotalNights    Number `json:"totalNights,omitempty"`
	// TotalCost is the precomputed stay cost written by older documents.
	TotalCost *Cost `json:"totalCost,omitempty"`
}

type Logistics struct {
	TransportSegments []TransportSegment `json:"transportSegments"`
}

type TransportSegment struct {
	ID               string            `json:"id"`
	FromLocation     string            `json:"fromLocation"`
	ToLocation       string            `json:"toLocation"`
	Date             string            `json:"date,omitempty"`
	TransportOptions []TransportOption `json:"transportOptions"`
}

type TransportType string

const (
	TransportFlight TransportType = "flight"
	TransportTrain  TransportType = "train"
	TransportBus    TransportType = "bus"
	TransportFerry  TransportType = "ferry"
	TransportCar    TransportType = "car"
)

// Valid reports whether t is one of the known transport types. Unset is not
// valid; the app requires a type on every option.
func (t TransportType) Valid() bool {
	switch t {
	case TransportFlight, TransportTrain, TransportBus, TransportFerry, TransportCar:
		return true
	}
	return false
}

type TransportOption struct {
	ID            string           `json:"id"`
	Priority      Priority         `json:"priority"`
	TransportType TransportType    `json:"transportType"`
	Cost          *Cost            `json:"cost,omitempty"`
	Details       TransportDetails `json:"details"`
	Duration      string           `json:"duration,omitempty"`
	BookingURL    string           `json:"bookingUrl,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// TransportDetails holds the per-type fields; only those matching the
// option's TransportType are filled.
type TransportDetails struct {
	// flight
	Airline          string `json:"airline,omitempty"`
	FlightNumber     string `json:"flightNumber,omitempty"`
	DepartureAirport string `json:"departureAirport,omitempty"`
	ArrivalAirport   string `json:"arrivalAirport,omitempty"`
	CabinClass       string `json:"cabinClass,omitempty"`
	Stops            Number `json:"stops,omitempty"`

	// train, bus, ferry
	Operator         string `json:"operator,omitempty"`
	ServiceNumber    string `json:"serviceNumber,omitempty"`
	DepartureStation string `json:"departureStation,omitempty"`
	ArrivalStation   string `json:"arrivalStation,omitempty"`
	DeparturePort    string `json:"departurePort,omitempty"`
	ArrivalPort      string `json:"arrivalPort,omitempty"`
	SeatClass        string `json:"seatClass,omitempty"`

	// car
	RentalCompany   string `json:"rentalCompany,omitempty"`
	CarType         string `json:"carType,omitempty"`
	PickupLocation  string `json:"pickupLocation,omitempty"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`

	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
}

// Cost is a flexible cost: cash and/or points in a named program.
type Cost struct {
	CashAmount    Number `json:"cashAmount"`
	PointsAmount  Number `json:"pointsAmount,omitempty"`
	PointsProgram string `json:"pointsProgram,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

type PriorityTier string

const (
	TierHigh   PriorityTier = "high"
	TierMedium PriorityTier = "medium"
	TierLow    PriorityTier = "low"
)

type Place struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ActivityRecommendation struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Category            string       `json:"category"`
	Description         string       `json:"description"`
	Location            Place        `json:"location"`
	Cost                Cost         `json:"cost"`
	BookingRequired     bool         `json:"bookingRequired"`
	BookingInstructions string       `json:"bookingInstructions,omitempty"`
	Tips                []string     `json:"tips"`
	Priority            PriorityTier `json:"priority"`
}

type RestaurantRecommendation struct {
	ID                      string       `json:"id"`
	Name                    string       `json:"name"`
	Cuisine                 string       `json:"cuisine"`
	Description             string       `json:"description"`
	Location                Place        `json:"location"`
	Cost                    Cost         `json:"cost"`
	ReservationRequired     bool         `json:"reservationRequired"`
	ReservationInstructions string       `json:"reservationInstructions,omitempty"`
	Tips                    []string     `json:"tips"`
	Priority                PriorityTier `json:"priority"`
}
