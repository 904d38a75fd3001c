package commands_test

import (
	"context"
	"testing"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/catalog"
	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/model/route"
	"parcelmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(
	ctx context.Context, tn parcel.TrackingNumber,
) (*parcel.Parcel, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ListPending(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *parcel.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *parcel.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByParcel(
	ctx context.Context, parcelID kernel.UUID,
) (*parcel.Assignment, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetByParcelForUpdate(
	ctx context.Context, parcelID kernel.UUID,
) (*parcel.Assignment, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Assignment), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, e *parcel.ShipmentEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) ListByParcel(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.ShipmentEvent, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.ShipmentEvent), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) AddAccount(ctx context.Context, a *ledger.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockLedgerRepository) Account(ctx context.Context, userID kernel.UUID) (*ledger.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockLedgerRepository) AccountForUpdate(
	ctx context.Context, userID kernel.UUID,
) (*ledger.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockLedgerRepository) UpdateAccount(ctx context.Context, a *ledger.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockLedgerRepository) AddTransaction(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) TransactionsByUser(
	ctx context.Context, userID kernel.UUID,
) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) SumSignedAmounts(ctx context.Context, userID kernel.UUID) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) GetOrCreate(ctx context.Context, l *geo.Location) (*geo.Location, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Location), args.Error(1)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*geo.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Location), args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationRepository) ReferenceCount(ctx context.Context, locationID kernel.UUID) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) AddUserLocation(ctx context.Context, ul *geo.UserLocation) error {
	args := m.Called(ctx, ul)
	return args.Error(0)
}

func (m *MockLocationRepository) GetUserLocation(
	ctx context.Context, id kernel.UUID,
) (*geo.UserLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.UserLocation), args.Error(1)
}

func (m *MockLocationRepository) ListUserLocations(
	ctx context.Context, userID kernel.UUID,
) ([]*geo.UserLocation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*geo.UserLocation), args.Error(1)
}

func (m *MockLocationRepository) DeleteUserLocation(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) ListAvailable(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) ProvincePair(
	ctx context.Context, originProvince, destProvince string,
) (*catalog.ProvincePair, error) {
	args := m.Called(ctx, originProvince, destProvince)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProvincePair), args.Error(1)
}

func (m *MockCatalogRepository) ProvinceByName(ctx context.Context, name string) (*catalog.Province, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Province), args.Error(1)
}

func (m *MockCatalogRepository) PlanByID(
	ctx context.Context, planID kernel.UUID,
) (*catalog.DeliveryPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeliveryPlan), args.Error(1)
}

func (m *MockCatalogRepository) PlanByName(ctx context.Context, name string) (*catalog.DeliveryPlan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeliveryPlan), args.Error(1)
}

func (m *MockCatalogRepository) ServicesByIDs(
	ctx context.Context, serviceIDs []kernel.UUID,
) ([]catalog.OptionalService, error) {
	args := m.Called(ctx, serviceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.OptionalService), args.Error(1)
}

func (m *MockCatalogRepository) PackageTypeByID(
	ctx context.Context, id kernel.UUID,
) (*catalog.PackageType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PackageType), args.Error(1)
}

func (m *MockCatalogRepository) BankByID(ctx context.Context, id kernel.UUID) (*catalog.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Bank), args.Error(1)
}

func (m *MockCatalogRepository) ActiveWarehouses(ctx context.Context) ([]catalog.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Warehouse), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) NotifySender(
	ctx context.Context, senderID kernel.UUID, kind, message string,
) error {
	args := m.Called(ctx, senderID, kind, message)
	return args.Error(0)
}

func (m *MockNotificationSink) NotifyCarrier(
	ctx context.Context, carrierID kernel.UUID, kind, message string,
) error {
	args := m.Called(ctx, carrierID, kind, message)
	return args.Error(0)
}

// MockUnitOfWork satisfies every narrow unit-of-work interface in the package.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUnitOfWork) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

func (m *MockUnitOfWork) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUnitOfWork) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUnitOfWork) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUnitOfWork) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

type MockCreateParcelUoWFactory struct{ mock.Mock }

func (m *MockCreateParcelUoWFactory) Create() commands.CreateParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateParcelUoW)
}

type MockBroadcastUoWFactory struct{ mock.Mock }

func (m *MockBroadcastUoWFactory) Create() commands.BroadcastUoW {
	args := m.Called()
	return args.Get(0).(commands.BroadcastUoW)
}

type MockAcceptParcelUoWFactory struct{ mock.Mock }

func (m *MockAcceptParcelUoWFactory) Create() commands.AcceptParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.AcceptParcelUoW)
}

type MockSubmitMeasurementsUoWFactory struct{ mock.Mock }

func (m *MockSubmitMeasurementsUoWFactory) Create() commands.SubmitMeasurementsUoW {
	args := m.Called()
	return args.Get(0).(commands.SubmitMeasurementsUoW)
}

type MockRouteProgressUoWFactory struct{ mock.Mock }

func (m *MockRouteProgressUoWFactory) Create() commands.RouteProgressUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteProgressUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

// restoreTestParcel builds a parcel in the given status with no measurements.
func restoreTestParcel(t *testing.T, senderID kernel.UUID, status parcel.Status) *parcel.Parcel {
	t.Helper()

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), senderID, parcel.NewTrackingNumber(),
		"Somsak", "0812345678", parcel.ItemClothing,
		kernel.NewUUID(), kernel.NewUUID(),
		nil, 25.0, nil, 0,
		status, nil, nil, nil, nil, time.Now(),
	)
	require.NoError(t, err)
	return p
}

// acceptedTestAssignment builds an assignment already claimed by carrierID.
func acceptedTestAssignment(t *testing.T, parcelID, carrierID kernel.UUID) *parcel.Assignment {
	t.Helper()

	a, err := parcel.RestoreAssignment(
		kernel.NewUUID(), parcelID, &carrierID, parcel.AssignmentAccepted, time.Now())
	require.NoError(t, err)
	return a
}
