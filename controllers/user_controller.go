package controllers

import (
	"net/http"

	"github.com/NutritionScanner/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

// GET /user?username=
func (uc *UserController) GetUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username query parameter is required"})
		return
	}

	profile, err := uc.svc.GetUserProfile(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
