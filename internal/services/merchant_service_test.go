package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"transactions-api/internal/models"
)

func testMerchantService(t *testing.T) *MerchantService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Merchant{}))

	return &MerchantService{db: db}
}

func TestMerchantServiceCRUD(t *testing.T) {
	svc := testMerchantService(t)

	merchant := &models.Merchant{
		MerchantID:       "shop-1",
		MerchantName:     "Shop One",
		ProviderName:     "commerce",
		APIKey:           "key-1",
		FallbackCurrency: "EUR",
		IsActive:         true,
	}
	require.NoError(t, svc.CreateMerchant(merchant))

	// Duplicate ids are rejected.
	require.Error(t, svc.CreateMerchant(&models.Merchant{MerchantID: "shop-1", APIKey: "other"}))

	got, err := svc.GetMerchantByID("shop-1")
	require.NoError(t, err)
	require.Equal(t, "Shop One", got.MerchantName)

	require.NoError(t, svc.UpdateMerchant("shop-1", map[string]interface{}{"merchant_name": "Shop 1"}))
	got, err = svc.GetMerchantByID("shop-1")
	require.NoError(t, err)
	require.Equal(t, "Shop 1", got.MerchantName)

	all, err := svc.GetAllMerchants()
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.DeleteMerchant("shop-1"))
	_, err = svc.GetMerchantByID("shop-1")
	require.Error(t, err)
}

func TestMerchantServiceUnknownMerchant(t *testing.T) {
	svc := testMerchantService(t)

	_, err := svc.GetMerchantByID("nope")
	require.Error(t, err)
	require.Error(t, svc.UpdateMerchant("nope", map[string]interface{}{"merchant_name": "x"}))
	require.Error(t, svc.DeleteMerchant("nope"))
}

func TestMerchantServiceInactiveHidden(t *testing.T) {
	svc := testMerchantService(t)

	require.NoError(t, svc.CreateMerchant(&models.Merchant{
		MerchantID: "shop-2",
		APIKey:     "key-2",
		IsActive:   false,
	}))

	_, err := svc.GetMerchantByID("shop-2")
	require.Error(t, err)
}
