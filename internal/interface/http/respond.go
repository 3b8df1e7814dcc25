package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/pkg/response"
)

// fail maps the application error taxonomy onto transport status codes.
// Anything outside the taxonomy is an unanticipated failure: logged and
// answered with a 500 for this request only.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	var (
		validation   *apperror.ValidationError
		conflict     *apperror.UserAlreadyExistsError
		unauthorized *apperror.UnauthorizedError
		forbidden    *apperror.ForbiddenError
		notFound     *apperror.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		response.Error(c, http.StatusBadRequest, validation.Message, validation.Code)
	case errors.As(err, &conflict):
		response.Error(c, http.StatusConflict, conflict.Message, conflict.Code)
	case errors.As(err, &unauthorized):
		response.Error(c, http.StatusUnauthorized, unauthorized.Message, unauthorized.Code)
	case errors.As(err, &forbidden):
		response.Error(c, http.StatusForbidden, forbidden.Message, forbidden.Code)
	case errors.As(err, &notFound):
		response.Error(c, http.StatusNotFound, notFound.Message, notFound.Code)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
