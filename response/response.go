// Package response writes JSON bodies in the requested language. Bodies are
// converted to a generic tree, localized, then serialized. Admin requests get
// the stored bilingual pairs untouched.
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/database"
	"github.com/mariam168/smart-shop-sub001/i18n"
	"github.com/mariam168/smart-shop-sub001/logger"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/pricing"
	"github.com/mariam168/smart-shop-sub001/store"
	"go.uber.org/zap"
)

// Localized resolves every bilingual value in body.
func Localized(c *gin.Context, status int, body any) {
	lang := middleware.Lang(c)
	write(c, status, body, func(tree any) any {
		return i18n.LocalizeDeep(tree, lang)
	})
}

// Translated resolves the bilingual values at paths, then localizes anything
// left so no raw pair reaches a non-admin client. A list body is translated
// element by element.
func Translated(c *gin.Context, status int, body any, paths []string) {
	lang := middleware.Lang(c)
	write(c, status, body, func(tree any) any {
		if list, ok := tree.([]any); ok {
			out := make([]any, len(list))
			for i, el := range list {
				out[i] = i18n.TranslateFields(el, lang, paths)
			}
			return i18n.LocalizeDeep(out, lang)
		}
		return i18n.LocalizeDeep(i18n.TranslateFields(tree, lang, paths), lang)
	})
}

func write(c *gin.Context, status int, body any, transform func(any) any) {
	if middleware.IsAdmin(c) {
		c.JSON(status, body)
		return
	}
	tree, err := toTree(body)
	if err != nil {
		logger.From(c).Warn("localization skipped", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, body)
		return
	}
	c.JSON(status, transform(tree))
}

func toTree(body any) (any, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// Error maps err to a status and writes {"error": msg}. Unexpected errors are
// logged and reported with fallback as the message.
func Error(c *gin.Context, err error, fallback string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, pricing.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound), database.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.From(c).Error(fallback, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
