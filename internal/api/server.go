package api

import (
	"net/http"

	"brasserie/internal/auth"
	"brasserie/internal/config"
	"brasserie/internal/live"
	"brasserie/internal/models"
	"brasserie/internal/monitoring"
	"brasserie/internal/orders"
	"brasserie/internal/reports"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Server wires the HTTP surface of the restaurant: customer checkout,
// kitchen and cashier workflows, and the admin back office.
type Server struct {
	router  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	orders  *orders.Service
	reports *reports.Service
	hub     *live.Hub
	monitor *monitoring.Monitor
}

// NewServer creates a fully routed API server.
func NewServer(cfg *config.Config, db *gorm.DB, hub *live.Hub) *Server {
	s := &Server{
		router:  gin.Default(),
		db:      db,
		cfg:     cfg,
		orders:  orders.NewService(db),
		reports: reports.NewService(db),
		hub:     hub,
		monitor: monitoring.NewMonitor(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Brasserie API is running"})
	})

	v1 := s.router.Group("/api/v1")

	// Public surface: browsing and sign-in need no token.
	v1.POST("/auth/login", s.Login)
	v1.POST("/auth/register", s.Register)
	v1.GET("/menu", s.ListMenu)
	v1.GET("/menu/:id", s.GetMenuItem)
	v1.GET("/categories", s.ListCategories)
	v1.GET("/categories/:id", s.GetCategory)

	authed := v1.Group("")
	authed.Use(auth.Middleware(s.cfg.JWTSecret))
	{
		authed.POST("/checkout", s.Checkout)
		authed.GET("/orders", s.ListOwnOrders)
		authed.GET("/orders/:id", s.GetOrder)
		authed.POST("/ratings", s.SubmitRating)
		authed.GET("/status", s.GetStatus)

		staff := authed.Group("")
		staff.Use(auth.RequireRole(models.RoleKitchen, models.RoleCashier, models.RoleAdmin))
		staff.GET("/ws", s.hub.HandleWS)

		kitchen := authed.Group("/kitchen")
		kitchen.Use(auth.RequireRole(models.RoleKitchen, models.RoleAdmin))
		{
			kitchen.GET("/orders", s.ListKitchenOrders)
			kitchen.PUT("/orders/status", s.UpdateOrderStatus)
			kitchen.GET("/menus", s.ListKitchenMenus)
			kitchen.PATCH("/menus", s.ToggleMenuAvailability)
		}

		cashier := authed.Group("/cashier")
		cashier.Use(auth.RequireRole(models.RoleCashier))
		{
			cashier.GET("/orders", s.ListUnpaidOrders)
			cashier.POST("/orders/:id/pay", s.PayOrder)
		}

		admin := authed.Group("/admin")
		admin.Use(auth.RequireRole(models.RoleAdmin))
		{
			admin.POST("/menu", s.CreateMenuItem)
			admin.PUT("/menu/:id", s.UpdateMenuItem)
			admin.DELETE("/menu/:id", s.DeleteMenuItem)

			admin.POST("/categories", s.CreateCategory)
			admin.PUT("/categories/:id", s.UpdateCategory)
			admin.DELETE("/categories/:id", s.DeleteCategory)

			admin.GET("/users", s.ListUsers)
			admin.POST("/users", s.CreateUser)
			admin.PUT("/users/:id", s.UpdateUser)
			admin.DELETE("/users/:id", s.DeleteUser)

			admin.GET("/orders", s.ListAllOrders)
			admin.GET("/sales", s.ListSales)
			admin.GET("/sales/summary", s.SalesSummary)
		}
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// GetStatus reports in-process operational metrics.
func (s *Server) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
