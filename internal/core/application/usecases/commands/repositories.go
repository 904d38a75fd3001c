// Package commands contains the write operations of the marketplace.
// Every command follows the same shape: a validated command object, a handler
// holding its dependencies, and a unit of work scoping the transaction.
package commands

import (
	"context"

	"parcelmarket/internal/core/ports"
)

// Unit of Work interfaces narrow the full ports.UnitOfWork down to the
// repositories each command actually touches.
type (
	// TxManager handles the transaction lifecycle shared by all units of
	// work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// AssignmentRepoFactory provides the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// EventRepoFactory provides the shipment event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// RouteRepoFactory provides the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// LedgerRepoFactory provides the balance ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// LocationRepoFactory provides the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// CarrierRepoFactory provides the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// CreateParcelUoW spans every aggregate touched by parcel creation:
	// the parcel itself, its route, the initial event, the sender's ledger
	// and the location book.
	CreateParcelUoW interface {
		TxManager
		ParcelRepoFactory
		EventRepoFactory
		RouteRepoFactory
		LedgerRepoFactory
		LocationRepoFactory
	}

	// CreateParcelUoWFactory creates CreateParcelUoW instances.
	CreateParcelUoWFactory interface {
		Create() CreateParcelUoW
	}

	// BroadcastUoW covers broadcasting parcels to carriers: reading pending
	// parcels, ensuring assignments and listing available carriers.
	BroadcastUoW interface {
		TxManager
		ParcelRepoFactory
		AssignmentRepoFactory
		CarrierRepoFactory
	}

	// BroadcastUoWFactory creates BroadcastUoW instances.
	BroadcastUoWFactory interface {
		Create() BroadcastUoW
	}

	// AcceptParcelUoW covers the accept race: the locked assignment, the
	// parcel status flip and the Accepted event.
	AcceptParcelUoW interface {
		TxManager
		ParcelRepoFactory
		AssignmentRepoFactory
		EventRepoFactory
	}

	// AcceptParcelUoWFactory creates AcceptParcelUoW instances.
	AcceptParcelUoWFactory interface {
		Create() AcceptParcelUoW
	}

	// SubmitMeasurementsUoW covers the pickup measurement step: parcel and
	// assignment state, the sender's ledger, the Picked Up event and the
	// location lookups feeding the pricing engine.
	SubmitMeasurementsUoW interface {
		TxManager
		ParcelRepoFactory
		AssignmentRepoFactory
		EventRepoFactory
		LedgerRepoFactory
		LocationRepoFactory
	}

	// SubmitMeasurementsUoWFactory creates SubmitMeasurementsUoW instances.
	SubmitMeasurementsUoWFactory interface {
		Create() SubmitMeasurementsUoW
	}

	// RouteProgressUoW covers stop arrivals and gated status updates.
	RouteProgressUoW interface {
		TxManager
		ParcelRepoFactory
		AssignmentRepoFactory
		RouteRepoFactory
		EventRepoFactory
	}

	// RouteProgressUoWFactory creates RouteProgressUoW instances.
	RouteProgressUoWFactory interface {
		Create() RouteProgressUoW
	}

	// LedgerUoW covers balance-only operations such as topups.
	LedgerUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// LedgerUoWFactory creates LedgerUoW instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// AddressUoW covers address book operations.
	AddressUoW interface {
		TxManager
		LocationRepoFactory
	}

	// AddressUoWFactory creates AddressUoW instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// CarrierUoW covers carrier profile operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates CarrierUoW instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}
)
