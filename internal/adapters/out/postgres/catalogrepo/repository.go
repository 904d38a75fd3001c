package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"parcelmarket/internal/core/domain/model/catalog"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM. All lookups
// run on the shared connection; absent rows are reported as
// errs.ErrObjectNotFound so the pricing engine can fall back to its defaults.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ProvincePair retrieves the rate override for an origin-destination
// province combination.
func (r *GormCatalogRepository) ProvincePair(
	ctx context.Context, originProvince, destProvince string,
) (*catalog.ProvincePair, error) {
	var dto ProvincePairDTO
	err := r.db.WithContext(ctx).First(&dto,
		"origin_province = ? AND dest_province = ?", originProvince, destProvince).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"provincePair", fmt.Sprintf("%s-%s", originProvince, destProvince))
		}
		return nil, err
	}

	return &catalog.ProvincePair{
		OriginProvince: dto.OriginProvince,
		DestProvince:   dto.DestProvince,
		Price:          dto.Price,
		DeliveryDays:   dto.DeliveryDays,
	}, nil
}

// ProvinceByName retrieves a province and its base rate.
func (r *GormCatalogRepository) ProvinceByName(
	ctx context.Context, name string,
) (*catalog.Province, error) {
	var dto ProvinceDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("province", name)
		}
		return nil, err
	}

	return provinceToDomain(dto)
}

// PlanByID retrieves a delivery plan.
func (r *GormCatalogRepository) PlanByID(
	ctx context.Context, planID kernel.UUID,
) (*catalog.DeliveryPlan, error) {
	if err := planID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPlanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", planID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPlan", planID.String())
		}
		return nil, err
	}

	return planToDomain(dto)
}

// PlanByName retrieves a delivery plan by its name.
func (r *GormCatalogRepository) PlanByName(
	ctx context.Context, name string,
) (*catalog.DeliveryPlan, error) {
	var dto DeliveryPlanDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPlan", name)
		}
		return nil, err
	}

	return planToDomain(dto)
}

// ServicesByIDs retrieves the optional services with the given IDs. Every
// requested ID must resolve; a missing one fails the whole lookup.
func (r *GormCatalogRepository) ServicesByIDs(
	ctx context.Context, serviceIDs []kernel.UUID,
) ([]catalog.OptionalService, error) {
	if len(serviceIDs) == 0 {
		return []catalog.OptionalService{}, nil
	}

	raw := make([]uuid.UUID, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []OptionalServiceDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}
	if len(dtos) != len(serviceIDs) {
		return nil, errs.NewObjectNotFoundError("optionalService",
			fmt.Sprintf("%d of %d requested services exist", len(dtos), len(serviceIDs)))
	}

	services := make([]catalog.OptionalService, 0, len(dtos))
	for _, dto := range dtos {
		service, err := serviceToDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

// PackageTypeByID retrieves a purchasable package type.
func (r *GormCatalogRepository) PackageTypeByID(
	ctx context.Context, id kernel.UUID,
) (*catalog.PackageType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packageType", id.String())
		}
		return nil, err
	}

	return packageTypeToDomain(dto)
}

// BankByID retrieves a topup deposit source.
func (r *GormCatalogRepository) BankByID(
	ctx context.Context, id kernel.UUID,
) (*catalog.Bank, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BankDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bank", id.String())
		}
		return nil, err
	}

	return bankToDomain(dto)
}

// ActiveWarehouses retrieves the warehouses available for route planning.
func (r *GormCatalogRepository) ActiveWarehouses(
	ctx context.Context,
) ([]catalog.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active = ?", true).Error; err != nil {
		return nil, err
	}

	warehouses := make([]catalog.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		warehouse, err := warehouseToDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}

	return warehouses, nil
}
