package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"delivery_admin/internal/middleware"
	"delivery_admin/internal/models"
	"delivery_admin/internal/services"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type wechatLoginInput struct {
	Code string `json:"code" binding:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login authenticates with username/password and returns a session
// token plus the user profile.
func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	user, err := ac.auth.Login(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	ac.respondWithSession(c, user)
}

// WechatLogin exchanges a mini-program code for a session.
func (ac *AuthController) WechatLogin(c *gin.Context) {
	var input wechatLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	user, err := ac.auth.WechatLogin(c.Request.Context(), input.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	ac.respondWithSession(c, user)
}

func (ac *AuthController) respondWithSession(c *gin.Context, user *models.User) {
	token, err := middleware.GenerateToken(user.ID, user.UserType)
	if err != nil {
		logrus.WithError(err).Error("could not sign session token")
		respond(c, http.StatusInternalServerError, "could not generate token", nil)
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"user_type": user.UserType,
	}).Info("login succeeded")

	respond(c, http.StatusOK, "login successful", gin.H{
		"token":   token,
		"profile": user,
	})
}
