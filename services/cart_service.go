package services

import (
	"context"

	apperrors "github.com/hikegear/storefront/common/errors"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/repository"
)

// CartView is the cart plus its derived totals, computed on demand from the
// current contents.
type CartView struct {
	Items      []models.CartItem `json:"items"`
	ItemCount  int               `json:"item_count"`
	TotalPrice float64           `json:"total_price"`
}

type CartService struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
}

func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository) *CartService {
	return &CartService{carts: carts, catalog: catalog}
}

func (s *CartService) view(cart *models.Cart) *CartView {
	if cart == nil {
		return &CartView{Items: []models.CartItem{}}
	}
	return &CartView{
		Items:      cart.Items,
		ItemCount:  cart.ItemCount(),
		TotalPrice: cart.TotalPrice(),
	}
}

func (s *CartService) Get(ctx context.Context, userID string) (*CartView, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	return s.view(cart), nil
}

// Add puts one unit of the product into the user's cart, incrementing the
// quantity when an entry for the product already exists.
func (s *CartService) Add(ctx context.Context, userID, productID string) (*CartView, *ServiceError) {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, fromAppError(apperrors.ErrProductNotFound)
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{Product: *product, Quantity: 1})
	}

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save cart"}
	}
	return s.view(cart), nil
}

// UpdateQuantity sets the quantity of a cart entry. A quantity of zero or
// below removes the entry entirely.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*CartView, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	if cart == nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Cart is empty"}
	}

	if quantity <= 0 {
		return s.removeFrom(ctx, cart, productID)
	}

	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity = quantity
			if err := s.carts.SaveCart(ctx, cart); err != nil {
				return nil, &ServiceError{StatusCode: 500, Message: "Failed to save cart"}
			}
			return s.view(cart), nil
		}
	}
	return nil, fromAppError(apperrors.ErrItemNotInCart)
}

// Remove deletes a cart entry; removing an absent entry is a no-op.
func (s *CartService) Remove(ctx context.Context, userID, productID string) (*CartView, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	if cart == nil {
		return s.view(nil), nil
	}
	return s.removeFrom(ctx, cart, productID)
}

func (s *CartService) removeFrom(ctx context.Context, cart *models.Cart, productID string) (*CartView, *ServiceError) {
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save cart"}
	}
	return s.view(cart), nil
}

// Clear empties the user's cart; clearing an absent cart is a no-op.
func (s *CartService) Clear(ctx context.Context, userID string) *ServiceError {
	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		return &ServiceError{StatusCode: 500, Message: "Failed to clear cart"}
	}
	return nil
}
