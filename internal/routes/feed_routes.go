package routes

import (
	"github.com/gin-gonic/gin"

	"delivery_admin/internal/controllers"
)

func FeedRoutes(r *gin.Engine, fc *controllers.CheckinFeedController) {
	ws := r.Group("/ws")
	{
		// token is carried as a query parameter; the handler validates it
		ws.GET("/checkins", fc.HandleFeed)
	}
}
