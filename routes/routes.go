package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/configs"
	"github.com/PremPrakashCodes/preplate/controllers"
	"github.com/PremPrakashCodes/preplate/middlewares"
	"github.com/PremPrakashCodes/preplate/repository"
	"github.com/PremPrakashCodes/preplate/services"
	"github.com/PremPrakashCodes/preplate/utils"
	"github.com/PremPrakashCodes/preplate/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, restRepo, cfg.JWTSecret)
	restSvc := services.NewRestaurantService(restRepo)
	// A nil *ws.OrderHub must become a nil interface, or the service's
	// Notifier != nil guard passes and the nil hub panics.
	var notifier services.OrderNotifier
	if hub != nil {
		notifier = hub
	}
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, notifier)
	reviewSvc := services.NewReviewService(reviewRepo, restRepo, orderRepo)
	favSvc := services.NewFavoriteService(favRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.Production())
	restCtrl := controllers.NewRestaurantController(restSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	favCtrl := controllers.NewFavoriteController(favSvc)

	auth := func(kinds ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, kinds...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public listings
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Reviews (token required; listing is scoped per kind in the service)
	r.GET("/restaurants/reviews", auth(), reviewCtrl.List)
	r.POST("/restaurants/reviews", auth(utils.KindUser), reviewCtrl.Create)

	// Orders
	orders := r.Group("/orders")
	{
		orders.POST("", auth(utils.KindUser), orderCtrl.Create)
		orders.GET("", auth(), orderCtrl.List)
		orders.GET("/:id", auth(), orderCtrl.Detail)
		orders.PATCH("/:id", auth(), orderCtrl.Update)
	}

	// Favorites (user kind only)
	favorites := r.Group("/favorites", auth(utils.KindUser))
	{
		favorites.GET("", favCtrl.List)
		favorites.POST("", favCtrl.Add)
		favorites.DELETE("", favCtrl.Remove)
	}

	// Live order feed for restaurant accounts
	if hub != nil {
		r.GET("/ws/orders", auth(utils.KindRestaurant), hub.Handle)
	}
}
