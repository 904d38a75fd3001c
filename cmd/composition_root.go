package cmd

import (
	"parcelmarket/internal/adapters/out/postgres"
	"parcelmarket/internal/adapters/out/postgres/catalogrepo"
	"parcelmarket/internal/adapters/out/postgres/notifierrepo"
	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormCatalogRepository
	notifier   *notifierrepo.GormNotificationSink
	pricing    *services.PricingEngine
	planner    services.RouteStopPlanner
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	catalog := catalogrepo.NewGormCatalogRepository(gormDB)

	pricing, err := services.NewPricingEngine(catalog)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		notifier:   notifierrepo.NewGormNotificationSink(gormDB),
		pricing:    pricing,
		planner:    services.NewRouteStopPlanner(),
	}, nil
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.CreateParcelUoWFactory = FuncCreateParcelUoWFactory(func() commands.CreateParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.catalog, c.pricing, c.planner, c.notifier)
}

func (c *CompositionRoot) CreateNotifyCarriersCommandHandler() commands.NotifyCarriersCommandHandler {
	var f commands.BroadcastUoWFactory = FuncBroadcastUoWFactory(func() commands.BroadcastUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyCarriersCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateBroadcastPendingParcelsCommandHandler() commands.BroadcastPendingParcelsCommandHandler {
	var f commands.BroadcastUoWFactory = FuncBroadcastUoWFactory(func() commands.BroadcastUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBroadcastPendingParcelsCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAcceptParcelCommandHandler() commands.AcceptParcelCommandHandler {
	var f commands.AcceptParcelUoWFactory = FuncAcceptParcelUoWFactory(func() commands.AcceptParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptParcelCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitMeasurementsCommandHandler() commands.SubmitMeasurementsCommandHandler {
	var f commands.SubmitMeasurementsUoWFactory = FuncSubmitMeasurementsUoWFactory(func() commands.SubmitMeasurementsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitMeasurementsCommandHandler(f, c.catalog, c.pricing, c.notifier)
}

func (c *CompositionRoot) CreateRecordStopArrivalCommandHandler() commands.RecordStopArrivalCommandHandler {
	var f commands.RouteProgressUoWFactory = FuncRouteProgressUoWFactory(func() commands.RouteProgressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordStopArrivalCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.RouteProgressUoWFactory = FuncRouteProgressUoWFactory(func() commands.RouteProgressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateTopupBalanceCommandHandler() commands.TopupBalanceCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTopupBalanceCommandHandler(f, c.catalog, c.notifier)
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() commands.AddAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAddressCommandHandler() commands.DeleteAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCarrierProfileCommandHandler() commands.UpdateCarrierProfileCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCarrierProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableParcelsQueryHandler() queries.GetAvailableParcelsQueryHandler {
	return queries.NewGetAvailableParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBalanceQueryHandler() queries.GetBalanceQueryHandler {
	return queries.NewGetBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionsQueryHandler() queries.GetTransactionsQueryHandler {
	return queries.NewGetTransactionsQueryHandler(c.gormDB)
}

type FuncCreateParcelUoWFactory func() commands.CreateParcelUoW

func (f FuncCreateParcelUoWFactory) Create() commands.CreateParcelUoW {
	return f()
}

type FuncBroadcastUoWFactory func() commands.BroadcastUoW

func (f FuncBroadcastUoWFactory) Create() commands.BroadcastUoW {
	return f()
}

type FuncAcceptParcelUoWFactory func() commands.AcceptParcelUoW

func (f FuncAcceptParcelUoWFactory) Create() commands.AcceptParcelUoW {
	return f()
}

type FuncSubmitMeasurementsUoWFactory func() commands.SubmitMeasurementsUoW

func (f FuncSubmitMeasurementsUoWFactory) Create() commands.SubmitMeasurementsUoW {
	return f()
}

type FuncRouteProgressUoWFactory func() commands.RouteProgressUoW

func (f FuncRouteProgressUoWFactory) Create() commands.RouteProgressUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}
