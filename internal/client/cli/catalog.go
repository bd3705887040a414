package cli

import (
	"context"
	"fmt"
)

// Products fetches the catalog and prints it. A failed fetch prints an
// empty catalog.
func (a *App) Products(ctx context.Context) error {
	if err := a.catalog.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "catalog fetch failed", "error", err)
	}

	products := a.catalog.Products()
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products")
		return nil
	}
	for _, p := range products {
		fmt.Fprintln(a.out, p)
	}
	return nil
}
