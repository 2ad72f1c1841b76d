package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"waiterman-system/config"
	"waiterman-system/internal/database"
	"waiterman-system/internal/handlers"
	"waiterman-system/internal/middleware"
	"waiterman-system/internal/services/order"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	orderManager := order.NewManager(order.NewGormStore(db))

	authHandler := handlers.NewAuthHandler(db, cfg.Auth)
	restaurantHandler := handlers.NewRestaurantHandler(db)
	menuHandler := handlers.NewMenuHandler(db, redisClient)
	tableHandler := handlers.NewTableHandler(db, cfg.Server.FrontendURL)
	orderHandler := handlers.NewOrderHandler(orderManager)
	dashboardHandler := handlers.NewDashboardHandler(db)

	r := gin.Default()

	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit())

	jwtAuth := middleware.JWTAuth(db, []byte(cfg.Auth.JWTSecret))

	// --- Public API group (auth + QR ordering flow) ---
	public := r.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		public.GET("/categories", menuHandler.ListCategories)
		public.GET("/subcategories", menuHandler.ListSubCategories)
		public.GET("/menu/items", menuHandler.ListMenuItems)

		public.GET("/tables/:id", tableHandler.GetTable)
		public.GET("/tables/:id/qr", tableHandler.GetTableQR)

		public.POST("/orders", orderHandler.CreateOrder)
		public.GET("/orders/:id", orderHandler.GetOrder)
	}

	// --- Protected API group ---
	protected := r.Group("/api")
	protected.Use(jwtAuth)
	{
		protected.GET("/auth/me", authHandler.Me)

		restaurants := protected.Group("/restaurants")
		restaurants.Use(middleware.RequireOperation(middleware.OpManageRestaurants))
		{
			restaurants.POST("", restaurantHandler.CreateRestaurant)
			restaurants.GET("", restaurantHandler.ListRestaurants)
		}

		branches := protected.Group("/branches")
		branches.Use(middleware.RequireOperation(middleware.OpManageBranches))
		{
			branches.POST("", restaurantHandler.CreateBranch)
			branches.GET("", restaurantHandler.ListBranches)
			branches.GET("/:id", restaurantHandler.GetBranch)
		}

		menu := protected.Group("")
		menu.Use(middleware.RequireOperation(middleware.OpManageMenu))
		{
			menu.POST("/categories", menuHandler.CreateCategory)
			menu.PUT("/categories/:id", menuHandler.UpdateCategory)
			menu.DELETE("/categories/:id", menuHandler.DeleteCategory)

			menu.POST("/subcategories", menuHandler.CreateSubCategory)
			menu.PUT("/subcategories/:id", menuHandler.UpdateSubCategory)
			menu.DELETE("/subcategories/:id", menuHandler.DeleteSubCategory)

			menu.POST("/menu/item", menuHandler.CreateMenuItem)
			menu.PUT("/menu/item/:id", menuHandler.UpdateMenuItem)
			menu.DELETE("/menu/item/:id", menuHandler.DeleteMenuItem)
		}

		tables := protected.Group("/tables")
		tables.Use(middleware.RequireOperation(middleware.OpManageTables))
		{
			tables.POST("", tableHandler.CreateTable)
			tables.GET("", tableHandler.ListTables)
			tables.PUT("/:id", tableHandler.UpdateTable)
			tables.DELETE("/:id", tableHandler.DeleteTable)
		}

		orders := protected.Group("/orders")
		orders.Use(middleware.RequireOperation(middleware.OpManageOrders))
		{
			orders.GET("", orderHandler.ListOrders)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		}

		dashboard := protected.Group("/dashboard")
		dashboard.Use(middleware.RequireOperation(middleware.OpViewDashboard))
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
		}
	}

	r.GET("/health", healthCheckHandler)

	port := ":" + cfg.Server.Port
	log.Printf("Starting server on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Server is running",
		"timestamp": time.Now(),
	})
}
