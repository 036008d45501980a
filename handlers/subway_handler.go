package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LianshengTAT/Wuhan-Metro-Simulation-System/models"
	"github.com/LianshengTAT/Wuhan-Metro-Simulation-System/subway"
)

// SubwayHandler serves the network queries over HTTP. The graph is
// immutable, so one handler instance is safe for concurrent requests.
type SubwayHandler struct {
	graph *subway.Graph
}

func NewSubwayHandler(graph *subway.Graph) *SubwayHandler {
	return &SubwayHandler{graph: graph}
}

func (h *SubwayHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/api/transfers", h.Transfers)
	router.GET("/api/stations/nearby", h.Nearby)
	router.POST("/api/route", h.Route)
	router.GET("/api/fare", h.FareQuery)
}

func (h *SubwayHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *SubwayHandler) Transfers(c *gin.Context) {
	transfers := h.graph.TransferStations()
	c.JSON(http.StatusOK, models.TransfersResponse{
		Count:     len(transfers),
		Transfers: transfers,
	})
}

func (h *SubwayHandler) Nearby(c *gin.Context) {
	station := c.Query("station")
	if station == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station parameter is required"})
		return
	}
	maxDistance, err := strconv.ParseFloat(c.Query("max_distance"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_distance must be a number"})
		return
	}

	hits := h.graph.Nearby(station, maxDistance)
	stations := make([]models.NearbyStation, 0, len(hits))
	for _, hit := range hits {
		stations = append(stations, models.NearbyStation{
			Station:    hit.Station,
			Line:       hit.Line,
			DistanceKm: hit.Distance,
		})
	}
	c.JSON(http.StatusOK, models.NearbyResponse{
		Station:       station,
		MaxDistanceKm: maxDistance,
		Stations:      stations,
	})
}

func (h *SubwayHandler) Route(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Start == "" || req.End == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end stations are required"})
		return
	}

	route, err := h.graph.ShortestPath(req.Start, req.End)
	var unknown *subway.UnknownStationError
	switch {
	case errors.As(err, &unknown):
		c.JSON(http.StatusNotFound, gin.H{"error": unknown.Error()})
		return
	case errors.Is(err, subway.ErrNoRoute):
		c.JSON(http.StatusOK, models.RouteResponse{
			RequestID: uuid.NewString(),
			Found:     false,
			Start:     req.Start,
			End:       req.End,
		})
		return
	case err != nil:
		log.Printf("ERROR: routing %s -> %s failed: %v", req.Start, req.End, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "routing failed"})
		return
	}

	fare, err := subway.Fare(route.Distance)
	if err != nil {
		log.Printf("ERROR: fare for distance %v failed: %v", route.Distance, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fare calculation failed"})
		return
	}

	segments := make([]models.RouteSegment, 0)
	for _, s := range route.Segments() {
		segments = append(segments, models.RouteSegment{Line: s.Line, From: s.From, To: s.To})
	}

	c.JSON(http.StatusOK, models.RouteResponse{
		RequestID:       uuid.NewString(),
		Found:           true,
		Start:           req.Start,
		End:             req.End,
		Path:            route.Path,
		ArrivalLines:    route.ArrivalLine,
		Segments:        segments,
		Transfers:       route.Transfers(),
		TotalDistanceKm: route.Distance,
		Fare:            fare,
	})
}

func (h *SubwayHandler) FareQuery(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Query("distance"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be a number"})
		return
	}

	fare, err := subway.Fare(distance)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.FareResponse{
		DistanceKm: distance,
		Fare:       fare,
	})
}
