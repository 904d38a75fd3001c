// Package catalogrepo provides read access to the operator-managed reference
// data: provinces and their rates, delivery plans, optional services, package
// types, banks and warehouses. The catalog is read-only from the
// application's point of view, so there is no unit of work involvement.
package catalogrepo

import (
	"parcelmarket/internal/core/domain/model/catalog"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ProvinceDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"uniqueIndex"`
	BasePrice    float64
	DeliveryDays int
}

func (ProvinceDTO) TableName() string {
	return "provinces"
}

type ProvincePairDTO struct {
	OriginProvince string `gorm:"primaryKey"`
	DestProvince   string `gorm:"primaryKey"`
	Price          float64
	DeliveryDays   int
}

func (ProvincePairDTO) TableName() string {
	return "province_pairs"
}

type DeliveryPlanDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                  string    `gorm:"uniqueIndex"`
	FastDeliveryFee       float64
	DeliveryDaysReduction int
	IsActive              bool
}

func (DeliveryPlanDTO) TableName() string {
	return "delivery_plans"
}

type OptionalServiceDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	ServiceFee float64
	IsActive   bool
}

func (OptionalServiceDTO) TableName() string {
	return "optional_services"
}

type PackageTypeDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Type     string
	Size     string
	DimX     float64
	DimY     float64
	DimZ     float64
	Price    float64
	IsActive bool
}

func (PackageTypeDTO) TableName() string {
	return "package_types"
}

type BankDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	IsActive bool
}

func (BankDTO) TableName() string {
	return "banks"
}

type WarehouseDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Code       string    `gorm:"uniqueIndex"`
	LocationID uuid.UUID `gorm:"type:uuid;index"`
	IsActive   bool
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func provinceToDomain(dto ProvinceDTO) (*catalog.Province, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &catalog.Province{
		ID:           id,
		Name:         dto.Name,
		BasePrice:    dto.BasePrice,
		DeliveryDays: dto.DeliveryDays,
	}, nil
}

func planToDomain(dto DeliveryPlanDTO) (*catalog.DeliveryPlan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &catalog.DeliveryPlan{
		ID:                    id,
		Name:                  dto.Name,
		FastDeliveryFee:       dto.FastDeliveryFee,
		DeliveryDaysReduction: dto.DeliveryDaysReduction,
		IsActive:              dto.IsActive,
	}, nil
}

func serviceToDomain(dto OptionalServiceDTO) (catalog.OptionalService, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.OptionalService{}, err
	}

	return catalog.OptionalService{
		ID:         id,
		Name:       dto.Name,
		ServiceFee: dto.ServiceFee,
		IsActive:   dto.IsActive,
	}, nil
}

func packageTypeToDomain(dto PackageTypeDTO) (*catalog.PackageType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &catalog.PackageType{
		ID:       id,
		Name:     dto.Name,
		Type:     dto.Type,
		Size:     dto.Size,
		DimX:     dto.DimX,
		DimY:     dto.DimY,
		DimZ:     dto.DimZ,
		Price:    dto.Price,
		IsActive: dto.IsActive,
	}, nil
}

func bankToDomain(dto BankDTO) (*catalog.Bank, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &catalog.Bank{
		ID:       id,
		Name:     dto.Name,
		IsActive: dto.IsActive,
	}, nil
}

func warehouseToDomain(dto WarehouseDTO) (catalog.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Warehouse{}, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return catalog.Warehouse{}, err
	}

	return catalog.Warehouse{
		ID:         id,
		Name:       dto.Name,
		Code:       dto.Code,
		LocationID: locationID,
		IsActive:   dto.IsActive,
	}, nil
}
