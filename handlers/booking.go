package handlers

import (
	"net/http"

	"groomly/middleware"
	"groomly/services/booking"

	"github.com/gin-gonic/gin"
)

// StartBookingSessionHandler opens a wizard session. An optional
// rescheduleId enters reschedule mode for that appointment.
func StartBookingSessionHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			RescheduleID string `json:"rescheduleId"`
		}
		// Body is optional for a plain new-booking session.
		_ = c.ShouldBindJSON(&input)

		session, err := svc.StartSession(middleware.UserID(c), input.RescheduleID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// GetBookingSessionHandler returns the current wizard state.
func GetBookingSessionHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.GetSession(c.Param("sessionId"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SelectBookingPetHandler records the pet choice.
func SelectBookingPetHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PetID string `json:"petId"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.SelectPet(c.Param("sessionId"), middleware.UserID(c), input.PetID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SelectBookingServiceHandler records the service choice.
func SelectBookingServiceHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ServiceID string `json:"serviceId"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.SelectService(c.Param("sessionId"), middleware.UserID(c), input.ServiceID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SelectBookingStylistHandler records the stylist choice.
func SelectBookingStylistHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			StylistID string `json:"stylistId"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.SelectStylist(c.Param("sessionId"), middleware.UserID(c), input.StylistID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SetBookingDateHandler records the date and resolves availability.
func SetBookingDateHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Date string `json:"date"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.SetDate(c.Param("sessionId"), middleware.UserID(c), input.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SelectBookingSlotHandler records the slot choice by its start time.
func SelectBookingSlotHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Start string `json:"start"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.SelectSlot(c.Param("sessionId"), middleware.UserID(c), input.Start)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SetBookingNotesHandler attaches free-form notes to the draft.
func SetBookingNotesHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Notes string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.SetNotes(c.Param("sessionId"), middleware.UserID(c), input.Notes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// AdvanceBookingHandler moves the wizard forward one step.
func AdvanceBookingHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Advance(c.Param("sessionId"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// BackBookingHandler moves the wizard one step back; backing out of the
// first step ends the session.
func BackBookingHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Back(c.Param("sessionId"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if session == nil {
			c.JSON(http.StatusOK, gin.H{"message": "booking session ended"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// ConfirmBookingHandler submits the draft.
func ConfirmBookingHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.Confirm(c.Param("sessionId"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, appt)
	}
}

// CancelBookingSessionHandler discards the session.
func CancelBookingSessionHandler(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CancelSession(c.Param("sessionId"), middleware.UserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
	}
}
