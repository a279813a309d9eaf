package routes

import (
	"github.com/gin-gonic/gin"

	"delivery_admin/internal/ability"
	"delivery_admin/internal/controllers"
	"delivery_admin/internal/middleware"
)

func CheckinRoutes(r *gin.Engine, cc *controllers.CheckinController) {
	checkins := r.Group("/api/checkins")
	checkins.Use(middleware.RequireAuth())
	{
		checkins.POST("/", middleware.RequireAbility(ability.ActionCreate, ability.SubjectCheckin), cc.Create)
		checkins.GET("/", middleware.RequireAbility(ability.ActionRead, ability.SubjectCheckin), cc.List)
		checkins.GET("/search", middleware.RequireAbility(ability.ActionRead, ability.SubjectCheckin), cc.Search)
		checkins.GET("/:id", middleware.RequireAbility(ability.ActionRead, ability.SubjectCheckin), cc.Get)
		checkins.PATCH("/:id", middleware.RequireAbility(ability.ActionUpdate, ability.SubjectCheckin), cc.Update)
		checkins.DELETE("/:id", middleware.RequireAbility(ability.ActionDelete, ability.SubjectCheckin), cc.Delete)
	}
}
