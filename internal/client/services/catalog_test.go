package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Refresh(t *testing.T) {
	shirt := models.Product{Title: "Shirt", Images: []string{"1.png"}}
	hat := models.Product{Title: "Hat"}
	fc := &fakeClient{ProductsRet: []models.Product{shirt, hat}}
	c := NewCatalog(fc, logging.Discard())
	ctx := context.Background()

	assert.Empty(t, c.Products())
	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, []models.Product{shirt, hat}, c.Products())

	fc.ProductsErr = errors.New("boom")
	require.ErrorIs(t, c.Refresh(ctx), common.ErrFetch)
	assert.Empty(t, c.Products(), "failure discards the previous list")
}

func TestCatalog_RefreshLogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("debug", &buf)
	require.NoError(t, err)

	fc := &fakeClient{ProductsRet: []models.Product{{Title: "Shirt"}}}
	c := NewCatalog(fc, log)
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	assert.Contains(t, buf.String(), "products fetched")
	assert.Contains(t, buf.String(), "count=1")

	fc.ProductsErr = errors.New("boom")
	require.Error(t, c.Refresh(ctx))
	assert.Contains(t, buf.String(), "list cleared")
	assert.Contains(t, buf.String(), "error=boom")
}
