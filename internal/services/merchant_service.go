package services

import (
	"fmt"

	"transactions-api/internal/database"
	"transactions-api/internal/models"

	"gorm.io/gorm"
)

// MerchantService provides merchant registry operations
type MerchantService struct {
	db *gorm.DB
}

// NewMerchantService creates a new merchant service
func NewMerchantService() *MerchantService {
	return &MerchantService{
		db: database.GetDB(),
	}
}

// GetMerchantByID gets an active merchant by its external ID
func (s *MerchantService) GetMerchantByID(merchantID string) (*models.Merchant, error) {
	var merchant models.Merchant
	result := s.db.Where("merchant_id = ? AND is_active = ?", merchantID, true).First(&merchant)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("merchant not found")
		}
		return nil, result.Error
	}
	return &merchant, nil
}

// GetAllMerchants gets all active merchants
func (s *MerchantService) GetAllMerchants() ([]*models.Merchant, error) {
	var merchants []*models.Merchant
	result := s.db.Where("is_active = ?", true).Find(&merchants)
	if result.Error != nil {
		return nil, result.Error
	}
	return merchants, nil
}

// CreateMerchant creates a new merchant connection
func (s *MerchantService) CreateMerchant(merchant *models.Merchant) error {
	// Check if merchant ID already exists
	var existing models.Merchant
	result := s.db.Where("merchant_id = ?", merchant.MerchantID).First(&existing)
	if result.Error == nil {
		return fmt.Errorf("merchant with ID %s already exists", merchant.MerchantID)
	}

	if err := s.db.Create(merchant).Error; err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}

	return nil
}

// UpdateMerchant updates an existing merchant connection
func (s *MerchantService) UpdateMerchant(merchantID string, updates map[string]interface{}) error {
	result := s.db.Model(&models.Merchant{}).Where("merchant_id = ?", merchantID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update merchant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("merchant not found")
	}
	return nil
}

// DeleteMerchant soft-deletes a merchant connection
func (s *MerchantService) DeleteMerchant(merchantID string) error {
	result := s.db.Where("merchant_id = ?", merchantID).Delete(&models.Merchant{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete merchant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("merchant not found")
	}
	return nil
}
