package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/hikegear/storefront/common/errors"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/repository"
)

// Defaults applied to admin-created products.
const (
	defaultRating = 4.5
	defaultImage  = "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=400&q=80"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

type CatalogService struct {
	catalog    repository.CatalogRepository
	categories []string
}

func NewCatalogService(catalog repository.CatalogRepository, categories []string) *CatalogService {
	return &CatalogService{catalog: catalog, categories: categories}
}

func (s *CatalogService) List(ctx context.Context, category string) ([]models.Product, *ServiceError) {
	products, err := s.catalog.FindAll(ctx, category)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list products"}
	}
	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, *ServiceError) {
	product, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, fromAppError(apperrors.ErrProductNotFound)
	}
	return product, nil
}

func (s *CatalogService) Categories() []string {
	return append([]string(nil), s.categories...)
}

func (s *CatalogService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, *ServiceError) {
	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Rating:      defaultRating,
	}
	if product.Image == "" {
		product.Image = defaultImage
	}
	product.SetStock(req.Stock)

	if err := s.catalog.Create(ctx, &product); err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create product"}
	}
	return &product, nil
}

// Update replaces the editable fields of a product. Updating a product that
// no longer exists is a silent no-op; the current record (or nil) is
// returned either way.
func (s *CatalogService) Update(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, *ServiceError) {
	existing, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, nil
	}

	existing.Name = req.Name
	existing.Price = req.Price
	existing.Category = req.Category
	existing.Description = req.Description
	if req.Image != "" {
		existing.Image = req.Image
	}
	existing.SetStock(req.Stock)

	if err := s.catalog.Update(ctx, existing); err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}
	return existing, nil
}

// Delete removes a product unconditionally. Orders that already snapshotted
// the product keep their copies.
func (s *CatalogService) Delete(ctx context.Context, id string) *ServiceError {
	if err := s.catalog.Delete(ctx, id); err != nil {
		return &ServiceError{StatusCode: 500, Message: "Failed to delete product"}
	}
	return nil
}
