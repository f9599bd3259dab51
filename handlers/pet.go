package handlers

import (
	"net/http"

	"groomly/middleware"
	"groomly/models"
	"groomly/services/pet"

	"github.com/gin-gonic/gin"
)

// CreatePetHandler adds a pet to the caller's profile.
func CreatePetHandler(svc pet.PetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Pet
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		created, err := svc.Create(middleware.UserID(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListPetsHandler returns the caller's pets.
func ListPetsHandler(svc pet.PetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pets, err := svc.ListForOwner(middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pets)
	}
}

// GetPetHandler returns one of the caller's pets.
func GetPetHandler(svc pet.PetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetByID(c.Param("id"), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// UpdatePetHandler updates one of the caller's pets.
func UpdatePetHandler(svc pet.PetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Pet
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		input.ID = c.Param("id")

		updated, err := svc.Update(middleware.UserID(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeletePetHandler removes one of the caller's pets.
func DeletePetHandler(svc pet.PetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pet deleted"})
	}
}
