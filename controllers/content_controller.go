package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hikegear/storefront/common/logger"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/services"
)

type ContentController struct {
	content *services.ContentService
}

func NewContentController(content *services.ContentService) *ContentController {
	return &ContentController{content: content}
}

func (cn *ContentController) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, cn.content.About())
}

func (cn *ContentController) GetContact(c *gin.Context) {
	c.JSON(http.StatusOK, cn.content.Contact())
}

type contactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactMessage validates a contact-form submission. The message is
// only logged; there is no mailbox behind the demo storefront.
func (cn *ContentController) SubmitContactMessage(c *gin.Context) {
	var req contactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	logger.Info(c, "Contact message received")
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully! We'll get back to you soon."})
}

// Admin content handlers. Each edit writes its blob back wholesale.

func (cn *ContentController) UpdateAbout(c *gin.Context) {
	var content models.AboutContent
	if err := c.ShouldBindJSON(&content); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if svcErr := cn.content.SetAbout(c.Request.Context(), content); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, cn.content.About())
}

func (cn *ContentController) UpdateContact(c *gin.Context) {
	var content models.ContactContent
	if err := c.ShouldBindJSON(&content); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if svcErr := cn.content.SetContact(c.Request.Context(), content); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, cn.content.Contact())
}

func (cn *ContentController) GetHeroImages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hero_images": cn.content.HeroImages()})
}

type heroImagesRequest struct {
	HeroImages []string `json:"hero_images" binding:"required"`
}

func (cn *ContentController) UpdateHeroImages(c *gin.Context) {
	var req heroImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if svcErr := cn.content.SetHeroImages(c.Request.Context(), req.HeroImages); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hero_images": cn.content.HeroImages()})
}

func (cn *ContentController) GetBankNumber(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bank_number": cn.content.BankNumber()})
}

type bankNumberRequest struct {
	BankNumber string `json:"bank_number" binding:"required"`
}

func (cn *ContentController) UpdateBankNumber(c *gin.Context) {
	var req bankNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if svcErr := cn.content.SetBankNumber(c.Request.Context(), req.BankNumber); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bank_number": cn.content.BankNumber()})
}
