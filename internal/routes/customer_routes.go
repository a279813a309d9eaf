package routes

import (
	"github.com/gin-gonic/gin"

	"delivery_admin/internal/ability"
	"delivery_admin/internal/controllers"
	"delivery_admin/internal/middleware"
)

func CustomerRoutes(r *gin.Engine, cc *controllers.CustomerController) {
	customers := r.Group("/api/customers")
	customers.Use(middleware.RequireAuth())
	{
		customers.POST("/", middleware.RequireAbility(ability.ActionCreate, ability.SubjectCustomer), cc.Create)
		customers.GET("/", middleware.RequireAbility(ability.ActionRead, ability.SubjectCustomer), cc.List)
		customers.GET("/search", middleware.RequireAbility(ability.ActionRead, ability.SubjectCustomer), cc.Search)
		customers.GET("/:id", middleware.RequireAbility(ability.ActionRead, ability.SubjectCustomer), cc.Get)
		customers.PATCH("/:id", middleware.RequireAbility(ability.ActionUpdate, ability.SubjectCustomer), cc.Update)
		customers.DELETE("/:id", middleware.RequireAbility(ability.ActionDelete, ability.SubjectCustomer), cc.Delete)
		customers.POST("/navigation", middleware.RequireAbility(ability.ActionRead, ability.SubjectCustomer), cc.Navigation)
	}
}
