package handlers

import (
	"errors"
	"net/http"

	"voyago/middleware"
	"voyago/models"
	"voyago/services/user"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration, login and profile endpoints.
type UserHandler struct {
	Svc user.Service
}

// NewUserHandler wires a UserHandler.
func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{Svc: svc}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "email already registered", input.Email)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to register user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Svc.Authenticate(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to authenticate", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

// Me handles GET /api/users/me behind the auth middleware.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	u, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}
