package handlers

import (
	"net/http"
	"strconv"

	"groomly/services/availability"

	"github.com/gin-gonic/gin"
)

// GetAvailabilityHandler returns the slot list for a stylist on a date.
// An optional slotMinutes query overrides the configured slot duration.
func GetAvailabilityHandler(svc availability.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stylistID := c.Query("stylistId")
		date := c.Query("date")
		if stylistID == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stylistId and date query parameters are required"})
			return
		}

		slotMinutes := 0
		if raw := c.Query("slotMinutes"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "slotMinutes must be a positive integer"})
				return
			}
			slotMinutes = parsed
		}

		slots, err := svc.SlotsFor(stylistID, date, slotMinutes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, slots)
	}
}

// GetDayOverviewHandler returns the raw schedule rules and appointments
// backing a stylist's availability for a date.
func GetDayOverviewHandler(svc availability.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stylistID := c.Query("stylistId")
		date := c.Query("date")
		if stylistID == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stylistId and date query parameters are required"})
			return
		}

		view, err := svc.DayOverview(stylistID, date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
