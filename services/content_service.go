package services

import (
	"context"

	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/repository"
)

// ContentService fronts the admin-editable content blobs.
type ContentService struct {
	content *repository.ContentRepository
}

func NewContentService(content *repository.ContentRepository) *ContentService {
	return &ContentService{content: content}
}

func (s *ContentService) About() models.AboutContent {
	return s.content.About()
}

func (s *ContentService) SetAbout(ctx context.Context, content models.AboutContent) *ServiceError {
	if content.Title == "" {
		return &ServiceError{StatusCode: 400, Message: "Title is required"}
	}
	s.content.SetAbout(ctx, content)
	return nil
}

func (s *ContentService) Contact() models.ContactContent {
	return s.content.Contact()
}

func (s *ContentService) SetContact(ctx context.Context, content models.ContactContent) *ServiceError {
	if content.Title == "" {
		return &ServiceError{StatusCode: 400, Message: "Title is required"}
	}
	s.content.SetContact(ctx, content)
	return nil
}

func (s *ContentService) HeroImages() []string {
	return s.content.HeroImages()
}

func (s *ContentService) SetHeroImages(ctx context.Context, images []string) *ServiceError {
	for _, img := range images {
		if img == "" {
			return &ServiceError{StatusCode: 400, Message: "Image references must be non-empty"}
		}
	}
	s.content.SetHeroImages(ctx, images)
	return nil
}

func (s *ContentService) BankNumber() string {
	return s.content.BankNumber()
}

func (s *ContentService) SetBankNumber(ctx context.Context, number string) *ServiceError {
	if number == "" {
		return &ServiceError{StatusCode: 400, Message: "Bank number is required"}
	}
	s.content.SetBankNumber(ctx, number)
	return nil
}
