package api

import (
	"net/http"

	"transactions-api/internal/models"
	"transactions-api/internal/response"
	"transactions-api/internal/services"

	"github.com/gin-gonic/gin"
)

// GetMerchants gets all merchant connections
func GetMerchants(c *gin.Context) {
	merchantService := services.NewMerchantService()
	merchants, err := merchantService.GetAllMerchants()
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to get merchants")
		return
	}

	response.SuccessJSON(c, merchants)
}

// CreateMerchantRequest represents create merchant request
type CreateMerchantRequest struct {
	MerchantID       string `json:"merchant_id" binding:"required"`
	MerchantName     string `json:"merchant_name" binding:"required"`
	ProviderName     string `json:"provider_name"`
	APIBaseURL       string `json:"api_base_url"`
	APIKey           string `json:"api_key" binding:"required"`
	SiteID           string `json:"site_id"`
	FallbackCurrency string `json:"fallback_currency"`
	Description      string `json:"description"`
}

// CreateMerchant creates a new merchant connection
func CreateMerchant(c *gin.Context) {
	var req CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	// Set defaults
	if req.ProviderName == "" {
		req.ProviderName = "commerce"
	}
	if req.FallbackCurrency == "" {
		req.FallbackCurrency = "EUR"
	}

	merchant := &models.Merchant{
		MerchantID:       req.MerchantID,
		MerchantName:     req.MerchantName,
		ProviderName:     req.ProviderName,
		APIBaseURL:       req.APIBaseURL,
		APIKey:           req.APIKey,
		SiteID:           req.SiteID,
		FallbackCurrency: req.FallbackCurrency,
		Description:      req.Description,
		IsActive:         true,
	}

	merchantService := services.NewMerchantService()
	if err := merchantService.CreateMerchant(merchant); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Failed to create merchant: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, response.Success(merchant))
}

// UpdateMerchantRequest represents update merchant request
type UpdateMerchantRequest struct {
	MerchantName     string `json:"merchant_name"`
	ProviderName     string `json:"provider_name"`
	APIBaseURL       string `json:"api_base_url"`
	APIKey           string `json:"api_key"`
	SiteID           string `json:"site_id"`
	FallbackCurrency string `json:"fallback_currency"`
	Description      string `json:"description"`
	IsActive         *bool  `json:"is_active"`
}

// UpdateMerchant updates an existing merchant connection
func UpdateMerchant(c *gin.Context) {
	merchantID := c.Param("id")
	if merchantID == "" {
		response.ErrorJSON(c, http.StatusBadRequest, "Merchant ID is required")
		return
	}

	var req UpdateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	// Build update map
	updates := make(map[string]interface{})
	if req.MerchantName != "" {
		updates["merchant_name"] = req.MerchantName
	}
	if req.ProviderName != "" {
		updates["provider_name"] = req.ProviderName
	}
	if req.APIBaseURL != "" {
		updates["api_base_url"] = req.APIBaseURL
	}
	if req.APIKey != "" {
		updates["api_key"] = req.APIKey
	}
	if req.SiteID != "" {
		updates["site_id"] = req.SiteID
	}
	if req.FallbackCurrency != "" {
		updates["fallback_currency"] = req.FallbackCurrency
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	merchantService := services.NewMerchantService()
	if err := merchantService.UpdateMerchant(merchantID, updates); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Failed to update merchant: "+err.Error())
		return
	}

	response.SuccessJSON(c, nil)
}

// DeleteMerchant deletes a merchant connection
func DeleteMerchant(c *gin.Context) {
	merchantID := c.Param("id")
	if merchantID == "" {
		response.ErrorJSON(c, http.StatusBadRequest, "Merchant ID is required")
		return
	}

	merchantService := services.NewMerchantService()
	if err := merchantService.DeleteMerchant(merchantID); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Failed to delete merchant: "+err.Error())
		return
	}

	response.SuccessJSON(c, nil)
}
