package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hikegear/storefront/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GetProducts lists the catalog, optionally filtered by ?category=.
func (cc *CatalogController) GetProducts(c *gin.Context) {
	category := c.DefaultQuery("category", "")

	products, svcErr := cc.catalog.List(c.Request.Context(), category)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": cc.catalog.Categories(),
	})
}

func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, svcErr := cc.catalog.Get(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct adds a catalog record (admin only).
func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	product, svcErr := cc.catalog.Create(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct replaces a catalog record (admin only). Updating a product
// that no longer exists succeeds without effect.
func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	product, svcErr := cc.catalog.Update(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a catalog record unconditionally (admin only).
func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	if svcErr := cc.catalog.Delete(c.Request.Context(), c.Param("id")); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
