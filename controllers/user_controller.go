package controllers

import (
	"context"
	"net/http"

	"auction-house/models"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	GetUser(ctx context.Context, id string) (*models.UserView, error)
}

type UserController struct {
	service UserServiceInterface
}

func NewUserController(service UserServiceInterface) *UserController {
	return &UserController{service: service}
}

// @Summary Get a user
// @Description Get a user's public profile with their products and bids
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.UserView
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/users/{userId} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	user, err := ctrl.service.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
