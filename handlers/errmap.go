package handlers

import (
	"errors"
	"net/http"

	"groomly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses: validation 400,
// auth 401, not-found 404, conflict 409, everything else 500 with a
// generic message.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *utils.ValidationError
		authErr       *utils.AuthError
		notFoundErr   *utils.NotFoundError
		conflictErr   *utils.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	default:
		utils.GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}
