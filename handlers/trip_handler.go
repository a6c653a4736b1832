package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wayfarer-app/wayfarer-backend/errors"
	"github.com/wayfarer-app/wayfarer-backend/logger"
	"github.com/wayfarer-app/wayfarer-backend/middleware"
	"github.com/wayfarer-app/wayfarer-backend/types"
)

// TripHandler handles HTTP requests related to trips.
type TripHandler struct {
	tripModel TripModelInterface
}

func NewTripHandler(tripModel TripModelInterface) *TripHandler {
	return &TripHandler{tripModel: tripModel}
}

// CreateTripRequest represents the request body for creating a trip.
// Required-field checks live in the model so the error can name every
// missing field at once, hence no binding:"required" tags here.
type CreateTripRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	StartDate   types.Date       `json:"startDate"`
	EndDate     types.Date       `json:"endDate"`
	Route       []types.Waypoint `json:"route"`
}

// DeleteTripResponse confirms a successful delete.
type DeleteTripResponse struct {
	Message string `json:"message"`
}

// CreateTripHandler handles POST /api/trips.
func (h *TripHandler) CreateTripHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		c.Abort()
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		log.Errorw("No user ID in context for CreateTripHandler")
		_ = c.Error(apperrors.AuthenticationFailed("No authenticated user"))
		c.Abort()
		return
	}

	trip := types.Trip{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Route:       req.Route,
	}

	created, err := h.tripModel.CreateTrip(c.Request.Context(), userID, &trip)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListTripsHandler handles GET /api/trips. Only the caller's own trips are
// returned, newest first.
func (h *TripHandler) ListTripsHandler(c *gin.Context) {
	userID := middleware.GetUserID(c)

	trips, err := h.tripModel.ListUserTrips(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, trips)
}

// GetTripHandler handles GET /api/trips/:id.
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	userID := middleware.GetUserID(c)
	tripID := c.Param("id")

	trip, err := h.tripModel.GetTripByID(c.Request.Context(), userID, tripID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, trip)
}

// UpdateTripHandler handles PATCH /api/trips/:id. The body is a partial
// field set; a supplied route replaces the stored one entirely.
func (h *TripHandler) UpdateTripHandler(c *gin.Context) {
	userID := middleware.GetUserID(c)
	tripID := c.Param("id")

	var update types.TripUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		c.Abort()
		return
	}

	updated, err := h.tripModel.UpdateTrip(c.Request.Context(), userID, tripID, &update)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTripHandler handles DELETE /api/trips/:id.
func (h *TripHandler) DeleteTripHandler(c *gin.Context) {
	userID := middleware.GetUserID(c)
	tripID := c.Param("id")

	if err := h.tripModel.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, DeleteTripResponse{Message: "Trip deleted successfully"})
}
