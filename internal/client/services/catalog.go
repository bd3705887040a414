package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// Catalog holds the last fetched product list. Like Directory, a failed
// Refresh leaves it empty.
type Catalog struct {
	client client.Client
	log    logging.Logger

	mu       sync.RWMutex
	products []models.Product
}

func NewCatalog(c client.Client, log logging.Logger) *Catalog {
	return &Catalog{client: c, log: log}
}

func (c *Catalog) Refresh(ctx context.Context) error {
	products, err := c.client.ListProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Debug(ctx, "products fetch failed, list cleared", "error", err)
		c.products = []models.Product{}
		return fmt.Errorf("%w: products: %w", common.ErrFetch, err)
	}
	c.products = products
	c.log.Debug(ctx, "products fetched", "count", len(products))
	return nil
}

func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Product{}, c.products...)
}
