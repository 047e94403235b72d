package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/i18n"
)

const (
	LangKey    = "lang"
	IsAdminKey = "is_admin"
	UserIDKey  = "user_id"
	RoleKey    = "role"
)

// Language stores the requested language on the context. The lang query
// parameter wins, then the explicit X-Lang header, then Accept-Language.
// Anything else is Arabic.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.DefaultLang
		for _, raw := range []string{c.Query("lang"), c.GetHeader("X-Lang"), c.GetHeader("Accept-Language")} {
			if l, ok := i18n.ParseLang(raw); ok {
				lang = l
				break
			}
		}
		c.Set(LangKey, lang)
		c.Next()
	}
}

// Lang returns the language chosen by Language, defaulting to Arabic.
func Lang(c *gin.Context) string {
	if l := c.GetString(LangKey); l != "" {
		return l
	}
	return i18n.DefaultLang
}
