package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"delivery_admin/internal/controllers"
	"delivery_admin/internal/services"
)

// SetupRouter wires services, controllers and route groups.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	users := services.NewUserService(db)
	customers := services.NewCustomerService(db)
	drivers := services.NewDriverService(db)
	checkins := services.NewCheckinService(db)
	auth := services.NewAuthService(db, users, services.NewWechatClient())

	hub := controllers.NewCheckinHub()

	AuthRoutes(r, controllers.NewAuthController(auth))
	UserRoutes(r, controllers.NewUserController(users))
	CustomerRoutes(r, controllers.NewCustomerController(customers))
	DriverRoutes(r, controllers.NewDriverController(drivers))
	CheckinRoutes(r, controllers.NewCheckinController(checkins, hub))
	FeedRoutes(r, controllers.NewCheckinFeedController(hub, checkins, drivers))

	return r
}
