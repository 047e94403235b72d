package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mariam168/smart-shop-sub001/promotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCatalog(t *testing.T) {
	now := time.Now()
	data, err := sampleCatalog(now, 15, 7*24*time.Hour)
	require.NoError(t, err)
	require.Len(t, data.Categories, 1)
	require.Len(t, data.Products, 2)
	require.Len(t, data.Advertisements, 1)

	cat := data.Categories[0]
	assert.False(t, cat.SubCategories[0].ID.IsZero())
	assert.Equal(t, cat.ID, *data.Products[0].Category)

	sale := data.Advertisements[0]
	assert.Equal(t, data.Products[0].ID, *sale.ProductRef)
	assert.True(t, promotion.IsEffective(&sale, now.Add(time.Hour)))
	assert.Equal(t, 170.0, promotion.ApplyDiscount(data.Products[0].BasePrice, &sale))

	_, err = sampleCatalog(now, 150, time.Hour)
	assert.ErrorIs(t, err, promotion.ErrInvalidPercentage)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_API_KEY", "key")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("BACKUP_RETENTION_DAYS", "")
	t.Setenv("BACKUP_HOUR", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "user-1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 3, len(strings.Split(strings.TrimSpace(out.String()), ".")))

	cmd = newRootCmd()
	cmd.SetArgs([]string{"token"})
	assert.Error(t, cmd.Execute())
}
