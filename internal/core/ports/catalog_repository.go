package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/catalog"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/services"
)

// CatalogRepository exposes the operator-managed reference data. It is
// read-only and safe to use outside a unit of work. Absent rows are reported
// as errs.ErrObjectNotFound.
type CatalogRepository interface {
	services.RateSource

	// PackageTypeByID retrieves a purchasable package type.
	PackageTypeByID(ctx context.Context, id kernel.UUID) (*catalog.PackageType, error)

	// BankByID retrieves a topup deposit source.
	BankByID(ctx context.Context, id kernel.UUID) (*catalog.Bank, error)

	// ActiveWarehouses retrieves the warehouses available for route
	// planning.
	ActiveWarehouses(ctx context.Context) ([]catalog.Warehouse, error)
}
