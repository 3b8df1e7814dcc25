package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fitlife/fitlife-api/internal/application"
	"github.com/fitlife/fitlife-api/internal/infrastructure/search"
	"github.com/fitlife/fitlife-api/pkg/helpers"
	"github.com/fitlife/fitlife-api/pkg/mailer"
	"github.com/fitlife/fitlife-api/pkg/response"
	"github.com/fitlife/fitlife-api/pkg/validation"
)

// AuthHandler exposes the registration and authentication endpoints. The
// welcome mail and search indexing are boundary side effects: best-effort,
// never part of the registration protocol's outcome.
type AuthHandler struct {
	Register *application.RegisterUser
	Login    *application.LoginUser
	Logger   *logrus.Logger
	Pub      *helpers.RabbitPublisher
	Index    *search.UserIndex
	MailOn   bool
}

func NewAuthHandler(register *application.RegisterUser, login *application.LoginUser, logger *logrus.Logger, pub *helpers.RabbitPublisher, index *search.UserIndex, mailOn bool) *AuthHandler {
	return &AuthHandler{Register: register, Login: login, Logger: logger, Pub: pub, Index: index, MailOn: mailOn}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterUser handles POST /auth/register.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetails(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	res, err := h.Register.Execute(c.Request.Context(), application.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}

	h.afterRegister(c, res.User)
	c.JSON(http.StatusCreated, res)
}

// LoginUser handles POST /auth/login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetails(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	res, err := h.Login.Execute(c.Request.Context(), application.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RefreshToken handles POST /auth/refresh.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetails(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	res, err := h.Login.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) afterRegister(c *gin.Context, user application.UserView) {
	if h.Index != nil {
		h.Index.IndexUser(c.Request.Context(), user)
	}

	if h.Pub != nil && h.MailOn {
		job := mailer.WelcomeJob(user.Email, user.Name)
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
			h.Logger.WithError(err).WithField("email", user.Email).Warn("welcome mail enqueue failed")
		}
	}
}
