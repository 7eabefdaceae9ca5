package controllers

import (
	"context"
	"net/http"

	"auction-house/middleware"
	"auction-house/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type AuthController struct {
	service AuthServiceInterface
}

func NewAuthController(service AuthServiceInterface) *AuthController {
	return &AuthController{service: service}
}

// @Summary Register
// @Description Create an account and receive a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.RegisterRequest true "Account details"
// @Success 201 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Info("user registered", map[string]any{"user_id": resp.User.ID})
	c.JSON(http.StatusCreated, resp)
}

// @Summary Login
// @Description Exchange credentials for a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Who am I
// @Description Return the identity resolved from the token
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Identity
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/auth/whoami [get]
func (ctrl *AuthController) WhoAmI(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": identity.ID, "admin": identity.IsAdmin})
}
