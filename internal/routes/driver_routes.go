package routes

import (
	"github.com/gin-gonic/gin"

	"delivery_admin/internal/ability"
	"delivery_admin/internal/controllers"
	"delivery_admin/internal/middleware"
)

func DriverRoutes(r *gin.Engine, dc *controllers.DriverController) {
	drivers := r.Group("/api/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.POST("/", middleware.RequireAbility(ability.ActionCreate, ability.SubjectDriver), dc.Create)
		drivers.GET("/", middleware.RequireAbility(ability.ActionRead, ability.SubjectDriver), dc.List)
		drivers.GET("/search", middleware.RequireAbility(ability.ActionRead, ability.SubjectDriver), dc.Search)
		drivers.GET("/:id", middleware.RequireAbility(ability.ActionRead, ability.SubjectDriver), dc.Get)
		drivers.PATCH("/:id", middleware.RequireAbility(ability.ActionUpdate, ability.SubjectDriver), dc.Update)
		drivers.PATCH("/:id/location", middleware.RequireAbility(ability.ActionUpdate, ability.SubjectDriver), dc.UpdateLocation)
		drivers.DELETE("/:id", middleware.RequireAbility(ability.ActionDelete, ability.SubjectDriver), dc.Delete)
	}
}
