package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"wanderwith/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile and booking history requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// parseUserID answers 404 for ids that are not integers, like an unmatched route
func parseUserID(c *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return userID, true
}

func (h *UserHandler) GetUserBookings(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting bookings of user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting profile of user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/user")
	{
		userGroup.GET("/bookings/:user_id", h.GetUserBookings)
		userGroup.GET("/profile/:user_id", h.GetUserProfile)
	}
}
