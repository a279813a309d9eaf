package routes

import (
	"github.com/gin-gonic/gin"

	"delivery_admin/internal/ability"
	"delivery_admin/internal/controllers"
	"delivery_admin/internal/middleware"
)

func UserRoutes(r *gin.Engine, uc *controllers.UserController) {
	users := r.Group("/api/users")
	users.Use(middleware.RequireAuth())
	{
		users.POST("/", middleware.RequireAbility(ability.ActionCreate, ability.SubjectUser), uc.Create)
		users.GET("/", middleware.RequireAbility(ability.ActionRead, ability.SubjectUser), uc.List)
		users.GET("/search", middleware.RequireAbility(ability.ActionRead, ability.SubjectUser), uc.Search)
		users.GET("/drivers", middleware.RequireAbility(ability.ActionRead, ability.SubjectUser), uc.ListDrivers)
		users.GET("/:id", middleware.RequireAbility(ability.ActionRead, ability.SubjectUser), uc.Get)
		users.PATCH("/:id", middleware.RequireAbility(ability.ActionUpdate, ability.SubjectUser), uc.Update)
		users.DELETE("/:id", middleware.RequireAbility(ability.ActionDelete, ability.SubjectUser), uc.Delete)
		users.POST("/batch-remove", middleware.RequireAbility(ability.ActionDelete, ability.SubjectUser), uc.BatchDelete)
	}
}
