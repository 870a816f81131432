package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chukchukgo-backend/models"
	"chukchukgo-backend/services"
	"chukchukgo-backend/utils"
)

type RegisterPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

func userData(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"fullName": user.FullName,
	}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, err := ctrl.AuthSvc.Register(
		payload.Username, payload.Password, payload.Email, payload.FullName, payload.Phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			utils.JSONError(c, http.StatusBadRequest, "Username already exists")
		case errors.Is(err, services.ErrEmailTaken):
			utils.JSONError(c, http.StatusBadRequest, "Email already exists")
		default:
			log.Printf("register error: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, userData(user))
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, err := ctrl.AuthSvc.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Printf("login error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, userData(user))
}
