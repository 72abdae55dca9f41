package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/services"
)

// HomeController serves the landing view. An admin session sees the admin
// console payload in place of the storefront home.
type HomeController struct {
	catalog *services.CatalogService
	content *services.ContentService
	orders  *services.OrderService
	tokens  *services.TokenService
}

func NewHomeController(catalog *services.CatalogService, content *services.ContentService, orders *services.OrderService, tokens *services.TokenService) *HomeController {
	return &HomeController{catalog: catalog, content: content, orders: orders, tokens: tokens}
}

// GetHome returns the storefront landing payload, or the admin console when
// the (optional) bearer token carries an admin session.
func (hc *HomeController) GetHome(c *gin.Context) {
	if session := hc.optionalSession(c); session != nil && session.User.Role == models.RoleAdmin {
		hc.adminConsole(c)
		return
	}

	products, svcErr := hc.catalog.List(c.Request.Context(), models.CategoryAll)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	featured := products
	if len(featured) > 3 {
		featured = featured[:3]
	}

	c.JSON(http.StatusOK, gin.H{
		"view":        "storefront",
		"hero_images": hc.content.HeroImages(),
		"featured":    featured,
		"categories":  hc.catalog.Categories(),
	})
}

func (hc *HomeController) adminConsole(c *gin.Context) {
	products, svcErr := hc.catalog.List(c.Request.Context(), models.CategoryAll)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	orders, svcErr := hc.orders.ListAllOrders(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	stats, svcErr := hc.orders.Stats(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"view":        "admin",
		"products":    products,
		"orders":      orders,
		"stats":       stats,
		"bank_number": hc.content.BankNumber(),
	})
}

// optionalSession validates the bearer token when present; an invalid or
// missing token simply yields the anonymous storefront view.
func (hc *HomeController) optionalSession(c *gin.Context) *services.Session {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}
	session, err := hc.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil
	}
	return session
}
