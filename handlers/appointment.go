package handlers

import (
	"net/http"

	"groomly/middleware"
	"groomly/models"
	"groomly/services/appointment"

	"github.com/gin-gonic/gin"
)

// ListAppointmentsHandler returns the caller's appointments: booked ones
// for clients, assigned ones for stylists.
func ListAppointmentsHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			appts []models.Appointment
			err   error
		)
		if middleware.UserRole(c) == models.RoleStylist {
			appts, err = svc.ListForStylist(middleware.UserID(c))
		} else {
			appts, err = svc.ListForClient(middleware.UserID(c))
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appts)
	}
}

// GetAppointmentHandler returns one appointment visible to the caller.
func GetAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.GetByID(c.Param("id"), middleware.UserID(c), middleware.UserRole(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// DayViewHandler returns the calling stylist's appointments for one date.
func DayViewHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
			return
		}

		appts, err := svc.DayView(middleware.UserID(c), date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appts)
	}
}

// ConfirmAppointmentHandler confirms a pending appointment (stylist only).
func ConfirmAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.Confirm(c.Param("id"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// CancelAppointmentHandler cancels an appointment.
func CancelAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.Cancel(c.Param("id"), middleware.UserID(c), middleware.UserRole(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// CompleteAppointmentHandler marks a finished visit as completed.
func CompleteAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.Complete(c.Param("id"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// NoShowAppointmentHandler records a client no-show.
func NoShowAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.MarkNoShow(c.Param("id"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}
