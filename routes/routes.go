package routes

import (
	"littlelemon/authz"
	"littlelemon/configs"
	"littlelemon/controllers"
	"littlelemon/entity"
	"littlelemon/middlewares"
	"littlelemon/repository"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(catRepo, itemRepo, menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, itemRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	groupSvc := services.NewGroupService(groupRepo, userRepo)
	bookingSvc := services.NewBookingService(bookingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewGroupController(groupSvc, entity.GroupManager)
	crewCtrl := controllers.NewGroupController(groupSvc, entity.GroupDeliveryCrew)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	pagesCtrl := controllers.NewPagesController(menuSvc, bookingSvc)

	auth := middlewares.Authenticate(userRepo, cfg.JWTSecret)
	gate := middlewares.Authorize

	// Content pages
	r.GET("/", pagesCtrl.Home)
	r.GET("/about", pagesCtrl.About)
	r.GET("/menu", pagesCtrl.Menu)
	r.GET("/book", pagesCtrl.Book)
	r.POST("/book", pagesCtrl.Book)

	// Auth
	r.POST("/api-token-auth", authCtrl.ObtainToken)
	r.POST("/api/users", authCtrl.Register)
	r.GET("/api/users/me", auth, authCtrl.Me)

	// Categories
	r.GET("/categories", menuCtrl.ListCategories)
	r.POST("/categories", auth, gate(authz.ActionCreate, authz.ResourceCategory), menuCtrl.CreateCategory)

	// Menu items
	r.GET("/menu-items", menuCtrl.ListMenuItems)
	r.GET("/menu-items/:id", menuCtrl.GetMenuItem)
	r.POST("/menu-items", auth, gate(authz.ActionCreate, authz.ResourceMenuItem), menuCtrl.CreateMenuItem)
	r.PUT("/menu-items/:id", auth, gate(authz.ActionWrite, authz.ResourceMenuItem), menuCtrl.UpdateMenuItem)
	r.PATCH("/menu-items/:id", auth, gate(authz.ActionWrite, authz.ResourceMenuItem), menuCtrl.UpdateMenuItem)
	r.DELETE("/menu-items/:id", auth, gate(authz.ActionDelete, authz.ResourceMenuItem), menuCtrl.DeleteMenuItem)

	// Menu-page dishes
	r.GET("/api/menu", menuCtrl.ListMenus)
	r.GET("/api/menu/:id", menuCtrl.GetMenu)
	r.POST("/api/menu", auth, gate(authz.ActionCreate, authz.ResourceMenu), menuCtrl.CreateMenu)
	r.PUT("/api/menu/:id", auth, gate(authz.ActionWrite, authz.ResourceMenu), menuCtrl.UpdateMenu)
	r.DELETE("/api/menu/:id", auth, gate(authz.ActionDelete, authz.ResourceMenu), menuCtrl.DeleteMenu)

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("/menu-items", gate(authz.ActionRead, authz.ResourceCart), cartCtrl.List)
		cart.POST("/menu-items", gate(authz.ActionCreate, authz.ResourceCart), cartCtrl.Add)
		cart.DELETE("/menu-items", gate(authz.ActionDelete, authz.ResourceCart), cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.GET("", gate(authz.ActionRead, authz.ResourceOrder), orderCtrl.List)
		orders.POST("", gate(authz.ActionCreate, authz.ResourceOrder), orderCtrl.Checkout)
		orders.GET("/:id", gate(authz.ActionRead, authz.ResourceOrder), orderCtrl.Get)
		orders.PUT("/:id", gate(authz.ActionWrite, authz.ResourceOrder), orderCtrl.Update)
		orders.PATCH("/:id", gate(authz.ActionWrite, authz.ResourceOrder), orderCtrl.Update)
		orders.DELETE("/:id", gate(authz.ActionDelete, authz.ResourceOrder), orderCtrl.Delete)
	}

	// Group membership
	manager := r.Group("/groups/manager/users", auth)
	{
		manager.GET("", gate(authz.ActionRead, authz.ResourceManagerGroup), managerCtrl.List)
		manager.POST("", gate(authz.ActionCreate, authz.ResourceManagerGroup), managerCtrl.Add)
		manager.DELETE("", gate(authz.ActionDelete, authz.ResourceManagerGroup), managerCtrl.Remove)
	}
	crew := r.Group("/groups/delivery-crew/users", auth)
	{
		crew.GET("", gate(authz.ActionRead, authz.ResourceDeliveryCrewGroup), crewCtrl.List)
		crew.POST("", gate(authz.ActionCreate, authz.ResourceDeliveryCrewGroup), crewCtrl.Add)
		crew.DELETE("", gate(authz.ActionDelete, authz.ResourceDeliveryCrewGroup), crewCtrl.Remove)
	}

	// Bookings
	r.GET("/bookings", bookingCtrl.List)
	r.POST("/bookings", bookingCtrl.Create)
}
