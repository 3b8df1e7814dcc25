package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fitlife/fitlife-api/internal/application"
	"github.com/fitlife/fitlife-api/internal/infrastructure/search"
	"github.com/fitlife/fitlife-api/internal/interface/middleware"
	"github.com/fitlife/fitlife-api/pkg/response"
	"github.com/fitlife/fitlife-api/pkg/validation"
)

// UserHandler exposes the authenticated profile and search endpoints.
type UserHandler struct {
	Profile *application.Profile
	Index   *search.UserIndex
	Logger  *logrus.Logger
}

func NewUserHandler(profile *application.Profile, index *search.UserIndex, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Profile: profile, Index: index, Logger: logger}
}

type updateProfileRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// GetProfile handles GET /profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	view, err := h.Profile.Get(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": view})
}

// UpdateProfile handles PUT /profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetails(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	view, err := h.Profile.UpdateName(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}

	if h.Index != nil {
		h.Index.IndexUser(c.Request.Context(), *view)
	}
	c.JSON(http.StatusOK, gin.H{"user": view})
}

// Search handles GET /users/search?q=&size=.
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Index.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}
