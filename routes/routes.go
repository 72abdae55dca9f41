package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hikegear/storefront/common/errors"
	"github.com/hikegear/storefront/controllers"
	"github.com/hikegear/storefront/middleware"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/services"
)

// Deps bundles the services the route tree needs.
type Deps struct {
	Tokens  *services.TokenService
	Auth    *services.AuthService
	Catalog *services.CatalogService
	Carts   *services.CartService
	Orders  *services.OrderService
	Content *services.ContentService
}

// Register wires every route group onto the engine, with the shared error
// translation in front of the handlers.
func Register(r *gin.Engine, d Deps) {
	r.Use(apperrors.ErrorMiddleware())

	authController := controllers.NewAuthController(d.Auth)
	catalogController := controllers.NewCatalogController(d.Catalog)
	cartController := controllers.NewCartController(d.Carts)
	orderController := controllers.NewOrderController(d.Orders)
	contentController := controllers.NewContentController(d.Content)
	homeController := controllers.NewHomeController(d.Catalog, d.Content, d.Orders, d.Tokens)

	// Public storefront routes
	r.GET("/", homeController.GetHome)
	r.GET("/products", catalogController.GetProducts)
	r.GET("/products/:id", catalogController.GetProduct)
	r.GET("/about", contentController.GetAbout)
	r.GET("/contact", contentController.GetContact)
	r.POST("/contact", contentController.SubmitContactMessage)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", middleware.RequireAuth(d.Tokens), authController.Logout)
	}

	// Cart routes require authentication
	cart := r.Group("/cart")
	cart.Use(middleware.RequireAuth(d.Tokens))
	{
		cart.GET("", cartController.GetCart)
		cart.POST("/items", cartController.AddItem)
		cart.PATCH("/items/:product_id", cartController.UpdateQuantity)
		cart.DELETE("/items/:product_id", cartController.RemoveItem)
		cart.DELETE("", cartController.ClearCart)
	}

	r.POST("/checkout", middleware.RequireAuth(d.Tokens), orderController.Checkout)
	r.GET("/orders", middleware.RequireAuth(d.Tokens), orderController.GetOrders)

	// Admin console
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/products", catalogController.CreateProduct)
		admin.PUT("/products/:id", catalogController.UpdateProduct)
		admin.DELETE("/products/:id", catalogController.DeleteProduct)

		admin.GET("/orders", orderController.GetAllOrders)
		admin.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)
		admin.GET("/stats", orderController.GetStats)

		admin.GET("/content/hero", contentController.GetHeroImages)
		admin.PUT("/content/hero", contentController.UpdateHeroImages)
		admin.PUT("/content/about", contentController.UpdateAbout)
		admin.PUT("/content/contact", contentController.UpdateContact)
		admin.GET("/content/bank", contentController.GetBankNumber)
		admin.PUT("/content/bank", contentController.UpdateBankNumber)
	}

	// Not-found fallback
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})
}
