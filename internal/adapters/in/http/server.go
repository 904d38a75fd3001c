// Package http exposes the marketplace over a REST API. The layer is thin:
// it binds and validates payloads, resolves the caller identity from headers,
// and hands fully constructed commands and queries to the application layer.
package http

import (
	"errors"
	"net/http"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Identity headers. Senders and carriers are authenticated upstream; these
// carry the already-verified caller ID.
const (
	HeaderSenderID  = "X-Sender-ID"
	HeaderCarrierID = "X-Carrier-ID"
)

// Tracking numbers are generated server-side; a collision is retried with a
// fresh number this many times before giving up.
const createParcelAttempts = 3

// CustomValidator adapts go-playground/validator to echo's Validator
// interface.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a validator for request payload structs.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks a bound request struct against its validation tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler         commands.CreateParcelCommandHandler
	notifyCarriersHandler       commands.NotifyCarriersCommandHandler
	acceptParcelHandler         commands.AcceptParcelCommandHandler
	submitMeasurementsHandler   commands.SubmitMeasurementsCommandHandler
	recordStopArrivalHandler    commands.RecordStopArrivalCommandHandler
	updateParcelStatusHandler   commands.UpdateParcelStatusCommandHandler
	topupBalanceHandler         commands.TopupBalanceCommandHandler
	addAddressHandler           commands.AddAddressCommandHandler
	deleteAddressHandler        commands.DeleteAddressCommandHandler
	updateCarrierProfileHandler commands.UpdateCarrierProfileCommandHandler

	// Query handlers
	trackParcelHandler         queries.TrackParcelQueryHandler
	getAvailableParcelsHandler queries.GetAvailableParcelsQueryHandler
	getBalanceHandler          queries.GetBalanceQueryHandler
	getTransactionsHandler     queries.GetTransactionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	notifyCarriersHandler commands.NotifyCarriersCommandHandler,
	acceptParcelHandler commands.AcceptParcelCommandHandler,
	submitMeasurementsHandler commands.SubmitMeasurementsCommandHandler,
	recordStopArrivalHandler commands.RecordStopArrivalCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	topupBalanceHandler commands.TopupBalanceCommandHandler,
	addAddressHandler commands.AddAddressCommandHandler,
	deleteAddressHandler commands.DeleteAddressCommandHandler,
	updateCarrierProfileHandler commands.UpdateCarrierProfileCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getAvailableParcelsHandler queries.GetAvailableParcelsQueryHandler,
	getBalanceHandler queries.GetBalanceQueryHandler,
	getTransactionsHandler queries.GetTransactionsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:         createParcelHandler,
		notifyCarriersHandler:       notifyCarriersHandler,
		acceptParcelHandler:         acceptParcelHandler,
		submitMeasurementsHandler:   submitMeasurementsHandler,
		recordStopArrivalHandler:    recordStopArrivalHandler,
		updateParcelStatusHandler:   updateParcelStatusHandler,
		topupBalanceHandler:         topupBalanceHandler,
		addAddressHandler:           addAddressHandler,
		deleteAddressHandler:        deleteAddressHandler,
		updateCarrierProfileHandler: updateCarrierProfileHandler,
		trackParcelHandler:          trackParcelHandler,
		getAvailableParcelsHandler:  getAvailableParcelsHandler,
		getBalanceHandler:           getBalanceHandler,
		getTransactionsHandler:      getTransactionsHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	v1 := e.Group("/api/v1")

	v1.POST("/parcels", s.CreateParcel)
	v1.GET("/parcels/available", s.GetAvailableParcels)
	v1.POST("/parcels/:parcelID/notify", s.NotifyCarriers)
	v1.POST("/parcels/:parcelID/accept", s.AcceptParcel)
	v1.POST("/parcels/:parcelID/measurements", s.SubmitMeasurements)
	v1.POST("/parcels/:parcelID/status", s.UpdateParcelStatus)

	v1.GET("/tracking/:trackingNumber", s.TrackParcel)

	v1.POST("/balance/topup", s.TopupBalance)
	v1.GET("/balance", s.GetBalance)
	v1.GET("/transactions", s.GetTransactions)

	v1.POST("/addresses", s.AddAddress)
	v1.DELETE("/addresses/:userLocationID", s.DeleteAddress)

	v1.PATCH("/carriers/profile", s.UpdateCarrierProfile)
}

// CreateParcel handles POST /api/v1/parcels - registers a new shipment.
func (s *Server) CreateParcel(ctx echo.Context) error {
	senderID, err := identity(ctx, HeaderSenderID)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	originUserLocationID, err := kernel.UUIDFromString(req.OriginUserLocationID)
	if err != nil {
		return writeError(ctx, err)
	}
	packageTypeID, err := optionalUUID(req.PackageTypeID)
	if err != nil {
		return writeError(ctx, err)
	}
	deliveryPlanID, err := optionalUUID(req.DeliveryPlanID)
	if err != nil {
		return writeError(ctx, err)
	}
	serviceIDs := make([]kernel.UUID, 0, len(req.ServiceIDs))
	for _, raw := range req.ServiceIDs {
		serviceID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		serviceIDs = append(serviceIDs, serviceID)
	}

	itemType, err := parcel.ItemTypeFromString(req.ItemType)
	if err != nil {
		return writeError(ctx, err)
	}
	destAddress, err := geo.NewAddress(
		req.Destination.Address, req.Destination.District,
		req.Destination.Subdistrict, req.Destination.Province,
		req.Destination.Country)
	if err != nil {
		return writeError(ctx, err)
	}

	for attempt := 0; attempt < createParcelAttempts; attempt++ {
		parcelID := kernel.NewUUID()
		trackingNumber := parcel.NewTrackingNumber()

		cmd, err := commands.NewCreateParcelCommand(
			parcelID, senderID, trackingNumber,
			req.ReceiverName, req.ReceiverPhone, itemType,
			originUserLocationID, destAddress,
			packageTypeID, deliveryPlanID, serviceIDs)
		if err != nil {
			return writeError(ctx, err)
		}

		handleErr := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
		if errors.Is(handleErr, gorm.ErrDuplicatedKey) {
			continue
		}
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}

		return ctx.JSON(http.StatusCreated, CreateParcelResponse{
			ParcelID:       parcelID.String(),
			TrackingNumber: trackingNumber.String(),
		})
	}

	return errorJSON(ctx, http.StatusInternalServerError, "could not allocate a tracking number")
}

// NotifyCarriers handles POST /api/v1/parcels/:parcelID/notify - offers the
// parcel to available carriers.
func (s *Server) NotifyCarriers(ctx echo.Context) error {
	senderID, err := identity(ctx, HeaderSenderID)
	if err != nil {
		return writeError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewNotifyCarriersCommand(parcelID, senderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.notifyCarriersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AcceptParcel handles POST /api/v1/parcels/:parcelID/accept - claims an
// offered parcel for the calling carrier.
func (s *Server) AcceptParcel(ctx echo.Context) error {
	carrierID, err := identity(ctx, HeaderCarrierID)
	if err != nil {
		return writeError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptParcelCommand(parcelID, carrierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.acceptParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SubmitMeasurements handles POST /api/v1/parcels/:parcelID/measurements -
// records weight and dimensions taken at pickup and fixes the price.
func (s *Server) SubmitMeasurements(ctx echo.Context) error {
	carrierID, err := identity(ctx, HeaderCarrierID)
	if err != nil {
		return writeError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req SubmitMeasurementsRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	var dimensions *parcel.Dimensions
	if req.Dimensions != nil {
		dims, err := parcel.NewDimensions(req.Dimensions.X, req.Dimensions.Y, req.Dimensions.Z)
		if err != nil {
			return writeError(ctx, err)
		}
		dimensions = &dims
	}

	cmd, err := commands.NewSubmitMeasurementsCommand(parcelID, carrierID, req.Weight, dimensions)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.submitMeasurementsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles POST /api/v1/parcels/:parcelID/status - a carrier
// progress report. Reports naming a route stop are arrivals; the rest are
// status transitions.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	carrierID, err := identity(ctx, HeaderCarrierID)
	if err != nil {
		return writeError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateParcelStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if req.StopID != nil {
		stopID, err := kernel.UUIDFromString(*req.StopID)
		if err != nil {
			return writeError(ctx, err)
		}

		cmd, err := commands.NewRecordStopArrivalCommand(parcelID, carrierID, stopID, req.IsLate)
		if err != nil {
			return writeError(ctx, err)
		}
		if handleErr := s.recordStopArrivalHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return writeError(ctx, handleErr)
		}
		return ctx.NoContent(http.StatusNoContent)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		parcelID, carrierID, req.EventType, req.Status, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}
	if handleErr := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TrackParcel handles GET /api/v1/tracking/:trackingNumber - the public
// tracking view. No identity header is required.
func (s *Server) TrackParcel(ctx echo.Context) error {
	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewTrackParcelQuery(trackingNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	events := make([]TrackParcelEvent, len(result.Events))
	for i, event := range result.Events {
		events[i] = TrackParcelEvent{
			EventType:   event.EventType,
			Status:      event.Status,
			Description: event.Description,
			OccurredAt:  event.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, TrackParcelResponse{
		TrackingNumber:    result.TrackingNumber,
		Status:            result.Status,
		EstimatedDelivery: result.EstimatedDelivery,
		CreatedAt:         result.CreatedAt,
		Events:            events,
	})
}

// GetAvailableParcels handles GET /api/v1/parcels/available - the marketplace
// listing for carriers.
func (s *Server) GetAvailableParcels(ctx echo.Context) error {
	if _, err := identity(ctx, HeaderCarrierID); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetAvailableParcelsQuery()

	results, err := s.getAvailableParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AvailableParcel, len(results))
	for i, result := range results {
		response[i] = AvailableParcel{
			ParcelID:            result.ParcelID,
			TrackingNumber:      result.TrackingNumber,
			ItemType:            result.ItemType,
			ReceiverName:        result.ReceiverName,
			OriginProvince:      result.OriginProvince,
			DestinationProvince: result.DestinationProvince,
			CreatedAt:           result.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// TopupBalance handles POST /api/v1/balance/topup - credits the sender's
// wallet through a registered bank.
func (s *Server) TopupBalance(ctx echo.Context) error {
	senderID, err := identity(ctx, HeaderSenderID)
	if err != nil {
		return writeError(ctx, err)
	}

	var req TopupBalanceRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	bankID, err := kernel.UUIDFromString(req.BankID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTopupBalanceCommand(senderID, bankID, req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.topupBalanceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetBalance handles GET /api/v1/balance - the sender's current balance.
func (s *Server) GetBalance(ctx echo.Context) error {
	senderID, err := identity(ctx, HeaderSenderID)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBalanceQuery(senderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BalanceResponse{
		UserID:  result.UserID,
		Balance: result.Balance,
	})
}

// GetTransactions handles GET /api/v1/transactions - the sender's wallet
// history, newest first.
func (s *Server) GetTransactions(ctx echo.Context) error {
	senderID, err := identity(ctx, HeaderSenderID)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTransactionsQuery(senderID)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.getTransactionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Transaction, len(results))
	for i, result := range results {
		response[i] = Transaction{
			TransactionID: result.TransactionID,
			Type:          result.Type,
			Amount:        result.Amount,
			Description:   result.Description,
			ParcelID:      result.ParcelID,
			BankID:        result.BankID,
			CreatedAt:     result.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddAddress handles POST /api/v1/addresses - saves a reusable pickup address
// in the sender's address book.
func (s *Server) AddAddress(ctx echo.Context) error {
	senderID, err := identity(ctx, HeaderSenderID)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	address, err := geo.NewAddress(
		req.Address.Address, req.Address.District,
		req.Address.Subdistrict, req.Address.Province,
		req.Address.Country)
	if err != nil {
		return writeError(ctx, err)
	}

	userLocationID := kernel.NewUUID()
	cmd, err := commands.NewAddAddressCommand(userLocationID, senderID, req.Name, address)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.addAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.JSON(http.StatusCreated, AddAddressResponse{
		UserLocationID: userLocationID.String(),
	})
}

// DeleteAddress handles DELETE /api/v1/addresses/:userLocationID - removes an
// address book entry.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	senderID, err := identity(ctx, HeaderSenderID)
	if err != nil {
		return writeError(ctx, err)
	}
	userLocationID, err := pathUUID(ctx, "userLocationID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteAddressCommand(userLocationID, senderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.deleteAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCarrierProfile handles PATCH /api/v1/carriers/profile - a partial
// update of the calling carrier's profile.
func (s *Server) UpdateCarrierProfile(ctx echo.Context) error {
	carrierID, err := identity(ctx, HeaderCarrierID)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateCarrierProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	patch := carrier.ProfilePatch{
		Name:         req.Name,
		Phone:        req.Phone,
		VehicleType:  req.VehicleType,
		LicensePlate: req.LicensePlate,
		IsAvailable:  req.IsAvailable,
	}

	cmd, err := commands.NewUpdateCarrierProfileCommand(carrierID, patch)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.updateCarrierProfileHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// identity extracts and parses the caller ID from the given header.
func identity(ctx echo.Context, header string) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(header)
	if raw == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("missing " + header + " header")
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("invalid "+header+" header", err)
	}
	return id, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
