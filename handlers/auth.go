package handlers

import (
	"net/http"

	"groomly/middleware"
	"groomly/models"
	"groomly/services/user"

	"github.com/gin-gonic/gin"
)

// RegisterHandler creates an account and signs it in.
func RegisterHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name       string `json:"name"`
			Email      string `json:"email"`
			Phone      string `json:"phone"`
			Password   string `json:"password"`
			Role       string `json:"role"`
			Specialty  string `json:"specialty"`
			Experience string `json:"experience"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.Register(models.User{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			Role:       input.Role,
			Specialty:  input.Specialty,
			Experience: input.Experience,
		}, input.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// SignInHandler authenticates by email and password.
func SignInHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.SignIn(input.Email, input.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SignOutHandler revokes the caller's token.
func SignOutHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.SignOut(middleware.UserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.GetByID(middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler applies profile changes for the authenticated user.
func UpdateProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.User
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		input.ID = middleware.UserID(c)

		if err := svc.Update(&input); err != nil {
			respondError(c, err)
			return
		}
		profile, err := svc.GetByID(input.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
