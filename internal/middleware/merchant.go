package middleware

import (
	"net/http"

	"transactions-api/internal/response"
	"transactions-api/internal/services"

	"github.com/gin-gonic/gin"
)

// MerchantKey is the gin context key the resolved merchant is stored under.
const MerchantKey = "merchant"

var MerchantService *services.MerchantService

// InitMerchantRegistry initializes the merchant registry
func InitMerchantRegistry() {
	MerchantService = services.NewMerchantService()
}

// MerchantMiddleware resolves which merchant connection a request targets.
// The merchant id comes from the X-Merchant-ID header or the merchant_id
// query parameter and defaults to the seeded "default" merchant, so a
// single-tenant deployment needs no headers at all.
func MerchantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		merchantID := c.GetHeader("X-Merchant-ID")
		if merchantID == "" {
			merchantID = c.Query("merchant_id")
		}
		if merchantID == "" {
			merchantID = "default"
		}

		merchant, err := MerchantService.GetMerchantByID(merchantID)
		if err != nil {
			c.JSON(http.StatusNotFound, response.Error("Unknown merchant"))
			c.Abort()
			return
		}

		c.Set(MerchantKey, merchant)
		c.Next()
	}
}
