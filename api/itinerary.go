package api

import (
	"net/http"
	"strconv"

	"github.com/avelis/spacetravel/internal/service/itinerary"
	"github.com/gin-gonic/gin"
)

// ItineraryHandler exposes the five read queries. Empty result sets are
// returned as empty arrays, never errors.
type ItineraryHandler struct {
	service itinerary.ItineraryUseCase
}

func NewItineraryHandler(service itinerary.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

func (h *ItineraryHandler) Register(router *gin.RouterGroup) {
	router.GET("/connected-ports", h.connectedPorts)
	router.GET("/departures", h.departures)
	router.GET("/arrivals", h.arrivals)
	router.GET("/route-flights", h.flightsBetween)
	router.GET("/flight-finder", h.findFlights)
}

func (h *ItineraryHandler) connectedPorts(c *gin.Context) {
	port := c.Query("port")
	if port == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "port is required"})
		return
	}
	ports, err := h.service.ConnectedPorts(c.Request.Context(), port)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ports)
}

func (h *ItineraryHandler) departures(c *gin.Context) {
	port, start, end := c.Query("port"), c.Query("start_day"), c.Query("end_day")
	if port == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "port is required"})
		return
	}
	rows, err := h.service.Departures(c.Request.Context(), port, start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ItineraryHandler) arrivals(c *gin.Context) {
	port, start, end := c.Query("port"), c.Query("start_day"), c.Query("end_day")
	if port == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "port is required"})
		return
	}
	rows, err := h.service.Arrivals(c.Request.Context(), port, start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ItineraryHandler) flightsBetween(c *gin.Context) {
	originID, err := strconv.ParseInt(c.Query("origin_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin_id"})
		return
	}
	destID, err := strconv.ParseInt(c.Query("dest_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dest_id"})
		return
	}
	rows, err := h.service.FlightsBetween(c.Request.Context(), originID, destID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ItineraryHandler) findFlights(c *gin.Context) {
	originID, err := strconv.ParseInt(c.Query("origin_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin_id"})
		return
	}
	destID, err := strconv.ParseInt(c.Query("dest_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dest_id"})
		return
	}
	maxTravel, err := strconv.ParseFloat(c.DefaultQuery("max_travel_hours", "24"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_travel_hours"})
		return
	}
	maxResults, err := strconv.Atoi(c.DefaultQuery("max_results", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_results"})
		return
	}
	rows, err := h.service.FindFlights(c.Request.Context(), itinerary.FindFlightsInput{
		Day:            c.Query("day"),
		OriginID:       originID,
		DestID:         destID,
		DepartAfter:    c.Query("depart_after"),
		MaxTravelHours: maxTravel,
		MaxResults:     maxResults,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
