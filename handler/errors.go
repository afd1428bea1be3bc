package handler

import (
	"errors"

	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the API's status codes: validation
// failures are 400, missing entities 404, everything else (including a
// detected hierarchy cycle) 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, usecase.ErrValidation):
		middleware.TrackError("validation")
		utils.BadRequest(c, err.Error())
	default:
		middleware.TrackError("internal")
		utils.InternalError(c, err.Error())
	}
}
