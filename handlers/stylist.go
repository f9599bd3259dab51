package handlers

import (
	"net/http"

	"groomly/middleware"
	"groomly/models"
	"groomly/services/stylist"
	"groomly/services/user"

	"github.com/gin-gonic/gin"
)

// ListStylistsHandler returns the public stylist directory.
func ListStylistsHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stylists, err := svc.ListStylists()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stylists)
	}
}

// CreateScheduleRuleHandler adds a working-hour rule for the calling stylist.
func CreateScheduleRuleHandler(svc stylist.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ScheduleRule
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		created, err := svc.CreateRule(middleware.UserID(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListScheduleRulesHandler returns the calling stylist's rules.
func ListScheduleRulesHandler(svc stylist.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules, err := svc.ListRules(middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rules)
	}
}

// UpdateScheduleRuleHandler updates one of the calling stylist's rules.
func UpdateScheduleRuleHandler(svc stylist.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ScheduleRule
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		input.ID = c.Param("id")

		updated, err := svc.UpdateRule(middleware.UserID(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteScheduleRuleHandler removes one of the calling stylist's rules.
func DeleteScheduleRuleHandler(svc stylist.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteRule(middleware.UserID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "schedule rule deleted"})
	}
}
