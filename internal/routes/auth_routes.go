package routes

import (
	"github.com/gin-gonic/gin"

	"delivery_admin/internal/controllers"
)

func AuthRoutes(r *gin.Engine, ac *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/wechat-login", ac.WechatLogin)
	}
}
