package router

import (
	"net/http"

	"inventra/internal/config"
	"inventra/internal/handler"
	"inventra/internal/middleware"
	"inventra/internal/repository"
	"inventra/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Identity issuance is a no-op until session support lands.
	authSvc := service.NewAuthService(userRepo, service.NewNoopIssuer())
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	// Every route is public: the deployed system issues no tokens.

	r.GET("/health", handler.Health(db))

	r.POST("/login", authH.Login)
	r.POST("/register", authH.Register)
	r.POST("/logout", authH.Logout)

	r.GET("/products", productsH.Get)
	r.POST("/products", productsH.Create)
	r.PUT("/products", productsH.Update)
	r.DELETE("/products", productsH.Delete)

	r.GET("/orders", ordersH.Get)
	r.POST("/orders", ordersH.Create)
	r.PUT("/orders", ordersH.Update)
	r.DELETE("/orders", ordersH.Delete)

	r.GET("/categories", categoriesH.Get)
	r.POST("/categories", categoriesH.Create)
	r.PUT("/categories", categoriesH.Update)
	r.DELETE("/categories", categoriesH.Delete)

	r.GET("/suppliers", suppliersH.Get)
	r.POST("/suppliers", suppliersH.Create)
	r.PUT("/suppliers", suppliersH.Update)
	r.DELETE("/suppliers", suppliersH.Delete)

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Static frontend under "/" (login page entry point). gin's wildcard
	// routing cannot share "/" with the API paths, so unmatched GETs fall
	// through to a plain file server rooted at WebRoot.
	static := http.FileServer(http.Dir(cfg.WebRoot))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			static.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
