package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel provides common fields for all database models
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Merchant stores the commerce provider connection for one dashboard
// tenant. Transactions themselves are never persisted; this row only
// tells the fetch orchestrator where to pull them from.
type Merchant struct {
	BaseModel
	MerchantID   string `json:"merchant_id" gorm:"uniqueIndex;not null"`
	MerchantName string `json:"merchant_name" gorm:"not null"`
	ProviderName string `json:"provider_name" gorm:"not null;default:commerce"`

	// Provider connection
	APIBaseURL string `json:"api_base_url"` // empty means the configured default
	APIKey     string `json:"api_key" gorm:"not null"`
	SiteID     string `json:"site_id"`

	// Normalization defaults
	FallbackCurrency string `json:"fallback_currency" gorm:"size:3;default:EUR"`

	Description string `json:"description"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

// TableName 指定表名
func (Merchant) TableName() string {
	return "merchants"
}
