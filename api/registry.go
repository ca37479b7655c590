package api

import (
	"net/http"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/avelis/spacetravel/internal/service/registry"
	"github.com/gin-gonic/gin"
)

// RegistryHandler exposes the entity write calls. Every request carries the
// caller's confirm decision; the service rolls back anything not confirmed.
type RegistryHandler struct {
	service registry.RegistryUseCase
}

func NewRegistryHandler(service registry.RegistryUseCase) *RegistryHandler {
	return &RegistryHandler{service: service}
}

func (h *RegistryHandler) Register(router *gin.RouterGroup) {
	router.POST("/planets", h.createPlanet)
	router.POST("/stations", h.createStation)
	router.POST("/spaceports", h.createSpaceport)
	router.POST("/spacecraft", h.createSpacecraft)
	router.POST("/routes", h.createRoute)
	router.POST("/flights", h.createFlight)
}

type createPlanetRequest struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Population int64  `json:"population"`
	Confirm    bool   `json:"confirm"`
}

func (h *RegistryHandler) createPlanet(c *gin.Context) {
	var req createPlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.EnterPlanet(c.Request.Context(), domain.Planet{
		Name:       req.Name,
		Size:       req.Size,
		Population: req.Population,
	}, registry.Confirm(req.Confirm))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"committed": true, "name": req.Name})
}

type createStationRequest struct {
	Name     string  `json:"name"`
	Planet   *string `json:"planet"`
	Capacity int     `json:"capacity"`
	Confirm  bool    `json:"confirm"`
}

func (h *RegistryHandler) createStation(c *gin.Context) {
	var req createStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.EnterStation(c.Request.Context(), domain.SpaceStation{
		Name:     req.Name,
		Planet:   req.Planet,
		Capacity: req.Capacity,
	}, registry.Confirm(req.Confirm))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"committed": true, "name": req.Name})
}

type createSpaceportRequest struct {
	Name     string  `json:"name"`
	Planet   *string `json:"planet"`
	Station  *string `json:"station"`
	Capacity int     `json:"capacity"`
	Fee      int     `json:"fee"`
	Confirm  bool    `json:"confirm"`
}

func (h *RegistryHandler) createSpaceport(c *gin.Context) {
	var req createSpaceportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.service.EnterSpaceport(c.Request.Context(), domain.Spaceport{
		Name:     req.Name,
		Planet:   req.Planet,
		Station:  req.Station,
		Capacity: req.Capacity,
		Fee:      req.Fee,
	}, registry.Confirm(req.Confirm))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"committed": true, "id": id, "name": req.Name})
}

type createSpacecraftRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	MaxRange int    `json:"max_range"`
	Confirm  bool   `json:"confirm"`
}

func (h *RegistryHandler) createSpacecraft(c *gin.Context) {
	var req createSpacecraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.EnterSpacecraft(c.Request.Context(), domain.SpacecraftType{
		Name:     req.Name,
		Capacity: req.Capacity,
		MaxRange: req.MaxRange,
	}, registry.Confirm(req.Confirm))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"committed": true, "name": req.Name})
}

type createRouteRequest struct {
	OriginID int64 `json:"origin_id"`
	DestID   int64 `json:"dest_id"`
	Distance int   `json:"distance"`
	Confirm  bool  `json:"confirm"`
}

func (h *RegistryHandler) createRoute(c *gin.Context) {
	var req createRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.service.EnterRoute(c.Request.Context(), domain.Route{
		OriginID: req.OriginID,
		DestID:   req.DestID,
		Distance: req.Distance,
	}, registry.Confirm(req.Confirm))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"committed": true, "id": id})
}

type createFlightRequest struct {
	Number         string   `json:"number"`
	RouteID        int64    `json:"route_id"`
	SpacecraftType string   `json:"spacecraft_type"`
	DepartureTime  string   `json:"departure_time"`
	DurationHours  float64  `json:"duration_hours"`
	Days           []string `json:"days"`
	Confirm        bool     `json:"confirm"`
}

func (h *RegistryHandler) createFlight(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.EnterFlight(c.Request.Context(), registry.FlightInput{
		Number:         req.Number,
		RouteID:        req.RouteID,
		SpacecraftType: req.SpacecraftType,
		DepartureTime:  req.DepartureTime,
		DurationHours:  req.DurationHours,
		Days:           req.Days,
	}, registry.Confirm(req.Confirm))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"committed": true, "number": req.Number})
}
