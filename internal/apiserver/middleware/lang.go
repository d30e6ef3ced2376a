package middleware

import (
	"github.com/farmchainx/farmchainx/internal/common/cnst"
	"github.com/farmchainx/farmchainx/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Language stores the negotiated response language for i18n lookups
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(cnst.XLang, i18n.LanguageFromRequest(c.Request))
		c.Next()
	}
}
