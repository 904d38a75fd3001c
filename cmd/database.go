package cmd

import (
	"fmt"

	"parcelmarket/internal/adapters/out/postgres/carrierrepo"
	"parcelmarket/internal/adapters/out/postgres/catalogrepo"
	"parcelmarket/internal/adapters/out/postgres/ledgerrepo"
	"parcelmarket/internal/adapters/out/postgres/locationrepo"
	"parcelmarket/internal/adapters/out/postgres/notifierrepo"
	"parcelmarket/internal/adapters/out/postgres/parcelrepo"
	"parcelmarket/internal/adapters/out/postgres/routerepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects to PostgreSQL. TranslateError turns driver duplicate
// key errors into gorm.ErrDuplicatedKey, which the tracking number retry and
// the location dedup path rely on.
func OpenDatabase(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// MigrateDatabase creates or updates the schema for every persisted type.
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.AssignmentDTO{},
		&parcelrepo.EventDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
		&ledgerrepo.AccountDTO{},
		&ledgerrepo.TransactionDTO{},
		&locationrepo.LocationDTO{},
		&locationrepo.UserLocationDTO{},
		&carrierrepo.CarrierDTO{},
		&catalogrepo.ProvinceDTO{},
		&catalogrepo.ProvincePairDTO{},
		&catalogrepo.DeliveryPlanDTO{},
		&catalogrepo.OptionalServiceDTO{},
		&catalogrepo.PackageTypeDTO{},
		&catalogrepo.BankDTO{},
		&catalogrepo.WarehouseDTO{},
		&notifierrepo.NotificationDTO{},
	)
}
