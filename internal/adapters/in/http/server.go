// Package http adapts the generated API surface to the application's
// command and query handlers.
package http

import (
	"net/http"

	"github.com/kikis202/spot/internal/core/application/usecases/commands"
	"github.com/kikis202/spot/internal/core/application/usecases/queries"
	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/generated/servers"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Commands bundles the command handlers the server dispatches to.
type Commands struct {
	CreateParcel   commands.CreateParcelCommandHandler
	AssignParcels  commands.AssignParcelsCommandHandler
	UpdateStatuses commands.UpdateStatusesCommandHandler
	TrackParcel    commands.TrackParcelCommandHandler
	StopTracking   commands.StopTrackingCommandHandler
	CreateAddress  commands.CreateAddressCommandHandler
	UpdateAddress  commands.UpdateAddressCommandHandler
	RemoveAddress  commands.RemoveAddressCommandHandler
	CreateContact  commands.CreateContactCommandHandler
	CreateMachine  commands.CreateMachineCommandHandler
	ChangeUserRole commands.ChangeUserRoleCommandHandler
}

// Queries bundles the query handlers the server dispatches to.
type Queries struct {
	GetParcel         queries.GetParcelQueryHandler
	ListParcels       queries.ListParcelsQueryHandler
	ListMachines      queries.ListMachinesQueryHandler
	ListMachinesAdmin queries.ListMachinesAdminQueryHandler
	ListAddresses     queries.ListAddressesQueryHandler
	GetAddress        queries.GetAddressQueryHandler
	GetContact        queries.GetContactQueryHandler
	ListUsers         queries.ListUsersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
	}
}

// CreateParcel handles POST /api/v1/parcels - registers a new shipment.
func (s *Server) CreateParcel(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var body servers.CreateParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	size, err := parcel.SizeFromString(string(body.Size))
	if err != nil {
		return jsonError(ctx, err)
	}

	parcelID := kernel.NewUUID()
	refs, err := parcelReferences(body)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, caller.ID, size,
		body.Weight, body.Dimensions, body.Notes,
		refs.origin, refs.destination, refs.senderContact, refs.receiverContact,
	)
	if err != nil {
		return jsonError(ctx, err)
	}

	trackingNumber, err := s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedParcel{
		Id:             parcelID.Bytes(),
		TrackingNumber: trackingNumber.String(),
	})
}

// parcelRefs groups the four stored-entity references of a new parcel.
type parcelRefs struct {
	origin          kernel.UUID
	destination     kernel.UUID
	senderContact   kernel.UUID
	receiverContact kernel.UUID
}

func parcelReferences(body servers.NewParcel) (parcelRefs, error) {
	var (
		refs parcelRefs
		err  error
	)
	if refs.origin, err = toKernelUUID(body.OriginId, "originId"); err != nil {
		return parcelRefs{}, err
	}
	if refs.destination, err = toKernelUUID(body.DestinationId, "destinationId"); err != nil {
		return parcelRefs{}, err
	}
	if refs.senderContact, err = toKernelUUID(body.SenderContactId, "senderContactId"); err != nil {
		return parcelRefs{}, err
	}
	if refs.receiverContact, err = toKernelUUID(body.ReceiverContactId, "receiverContactId"); err != nil {
		return parcelRefs{}, err
	}
	return refs, nil
}

// ListParcels handles GET /api/v1/parcels - lists parcels visible to the caller.
func (s *Server) ListParcels(ctx echo.Context, params servers.ListParcelsParams) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	scope, err := parcelScopeFromParam(params.Scope)
	if err != nil {
		return jsonError(ctx, err)
	}
	filters, err := parcelFiltersFromParams(params)
	if err != nil {
		return jsonError(ctx, err)
	}

	query, err := queries.NewListParcelsQuery(scope, caller, intOrZero(params.Page), intOrZero(params.Size), filters)
	if err != nil {
		return jsonError(ctx, err)
	}

	page, err := s.queries.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	items := make([]servers.ParcelSummary, len(page.Items))
	for i, item := range page.Items {
		items[i] = servers.ParcelSummary{
			Id:             item.ID.Bytes(),
			TrackingNumber: item.TrackingNumber.String(),
			Status:         servers.ParcelStatus(item.Status.String()),
			Size:           servers.ParcelSize(item.Size.String()),
			CreatedAt:      item.CreatedAt,
		}
		if item.CourierID != nil {
			courierID := item.CourierID.Bytes()
			items[i].CourierId = &courierID
		}
	}

	return ctx.JSON(http.StatusOK, servers.ParcelPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	})
}

func parcelScopeFromParam(scope servers.ListParcelsParamsScope) (queries.ParcelScope, error) {
	switch scope {
	case servers.ListParcelsParamsScopeAll:
		return queries.ParcelScopeAll, nil
	case servers.ListParcelsParamsScopeMine:
		return queries.ParcelScopeMine, nil
	case servers.ListParcelsParamsScopeAssigned:
		return queries.ParcelScopeAssigned, nil
	case servers.ListParcelsParamsScopeAssignable:
		return queries.ParcelScopeAssignable, nil
	case servers.ListParcelsParamsScopeTracked:
		return queries.ParcelScopeTracked, nil
	default:
		return queries.ParcelScopeUnknown, errs.NewValueIsInvalidError("scope")
	}
}

func parcelFiltersFromParams(params servers.ListParcelsParams) (queries.ParcelFilters, error) {
	var (
		filters queries.ParcelFilters
		err     error
	)

	if params.TrackingNumber != nil {
		trackingNumber, tnErr := kernel.TrackingNumberFromString(*params.TrackingNumber)
		if tnErr != nil {
			return queries.ParcelFilters{}, tnErr
		}
		filters.TrackingNumber = &trackingNumber
	}
	if params.Status != nil {
		status, stErr := parcel.StatusFromString(string(*params.Status))
		if stErr != nil {
			return queries.ParcelFilters{}, stErr
		}
		filters.Status = &status
	}
	if params.ParcelSize != nil {
		size, szErr := parcel.SizeFromString(string(*params.ParcelSize))
		if szErr != nil {
			return queries.ParcelFilters{}, szErr
		}
		filters.Size = &size
	}
	if filters.OriginID, err = toOptionalKernelUUID(params.OriginId, "originId"); err != nil {
		return queries.ParcelFilters{}, err
	}
	if filters.DestinationID, err = toOptionalKernelUUID(params.DestinationId, "destinationId"); err != nil {
		return queries.ParcelFilters{}, err
	}
	if filters.SenderID, err = toOptionalKernelUUID(params.SenderId, "senderId"); err != nil {
		return queries.ParcelFilters{}, err
	}
	if filters.CourierID, err = toOptionalKernelUUID(params.CourierId, "courierId"); err != nil {
		return queries.ParcelFilters{}, err
	}

	return filters, nil
}

// GetParcel handles GET /api/v1/parcels/{trackingNumber} - public parcel lookup.
func (s *Server) GetParcel(ctx echo.Context, trackingNumber string) error {
	parsed, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return jsonError(ctx, err)
	}

	var caller *account.Caller
	if c, ok := callerFromContext(ctx); ok {
		caller = &c
	}

	query, err := queries.NewGetParcelQuery(parsed, caller)
	if err != nil {
		return jsonError(ctx, err)
	}

	view, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	updates := make([]servers.ParcelUpdate, len(view.Updates))
	for i, update := range view.Updates {
		updates[i] = servers.ParcelUpdate{
			Status:    servers.ParcelStatus(update.Status.String()),
			Title:     update.Title,
			CreatedAt: update.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.ParcelDetails{
		Id:             view.ID.Bytes(),
		TrackingNumber: view.TrackingNumber.String(),
		Status:         servers.ParcelStatus(view.Status.String()),
		Size:           servers.ParcelSize(view.Size.String()),
		Destination:    addressFromSummary(view.Destination),
		Updates:        updates,
		IsSender:       view.IsSender,
		IsTracked:      view.IsTracked,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	})
}

// AssignParcels handles POST /api/v1/parcels/assign - assigns parcels to a courier.
func (s *Server) AssignParcels(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !caller.Role.IsCourier() {
		return forbidden(ctx, "assigning parcels requires courier role")
	}

	var body servers.AssignParcelsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := caller.ID
	if body.CourierId != nil {
		target, err := toKernelUUID(*body.CourierId, "courierId")
		if err != nil {
			return jsonError(ctx, err)
		}
		if !target.IsEqual(caller.ID) && !caller.Role.IsAdmin() {
			return forbidden(ctx, "assigning parcels to another courier requires admin role")
		}
		courierID = target
	}

	parcelIDs := make([]kernel.UUID, len(body.ParcelIds))
	for i, id := range body.ParcelIds {
		parcelID, err := toKernelUUID(id, "parcelIds")
		if err != nil {
			return jsonError(ctx, err)
		}
		parcelIDs[i] = parcelID
	}

	cmd, err := commands.NewAssignParcelsCommand(courierID, parcelIDs)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.AssignParcels.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatuses handles POST /api/v1/parcels/statuses - applies a batch of
// status changes atomically.
func (s *Server) UpdateParcelStatuses(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !caller.Role.IsCourier() {
		return forbidden(ctx, "updating parcel statuses requires courier role")
	}

	var body servers.UpdateParcelStatusesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	changes := make([]commands.StatusChange, len(body.Changes))
	for i, entry := range body.Changes {
		parcelID, err := toKernelUUID(entry.ParcelId, "parcelId")
		if err != nil {
			return jsonError(ctx, err)
		}
		status, err := parcel.StatusFromString(string(entry.Status))
		if err != nil {
			return jsonError(ctx, err)
		}
		title := ""
		if entry.Title != nil {
			title = *entry.Title
		}
		change, err := commands.NewStatusChange(parcelID, status, title)
		if err != nil {
			return jsonError(ctx, err)
		}
		changes[i] = change
	}

	cmd, err := commands.NewUpdateStatusesCommand(changes)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.UpdateStatuses.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackParcel handles POST /api/v1/parcels/{trackingNumber}/tracking - subscribes
// the caller to a parcel's updates.
func (s *Server) TrackParcel(ctx echo.Context, trackingNumber string) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	parsed, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return jsonError(ctx, err)
	}
	cmd, err := commands.NewTrackParcelCommand(caller.ID, parsed)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.TrackParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StopTrackingParcel handles DELETE /api/v1/parcels/{trackingNumber}/tracking.
func (s *Server) StopTrackingParcel(ctx echo.Context, trackingNumber string) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	parsed, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return jsonError(ctx, err)
	}
	cmd, err := commands.NewStopTrackingCommand(caller.ID, parsed)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.StopTracking.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListMachines handles GET /api/v1/machines - public machine directory.
func (s *Server) ListMachines(ctx echo.Context) error {
	machines, err := s.queries.ListMachines.Handle(ctx.Request().Context(), queries.NewListMachinesQuery())
	if err != nil {
		return jsonError(ctx, err)
	}

	response := make([]servers.Machine, len(machines))
	for i, machine := range machines {
		response[i] = servers.Machine{
			Id:      machine.ID.Bytes(),
			Name:    machine.Name,
			Address: addressFieldsFromSummary(machine.Address),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMachine handles POST /api/v1/machines - provisions a machine with its
// lockers. Admin only.
func (s *Server) CreateMachine(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !caller.Role.IsAdmin() {
		return forbidden(ctx, "provisioning machines requires admin role")
	}

	var body servers.CreateMachineJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lockerCounts := make(map[parcel.Size]int)
	if body.Lockers != nil {
		for sizeName, count := range *body.Lockers {
			size, err := parcel.SizeFromString(sizeName)
			if err != nil {
				return jsonError(ctx, err)
			}
			lockerCounts[size] = count
		}
	}

	machineID := kernel.NewUUID()
	cmd, err := commands.NewCreateMachineCommand(
		machineID, body.Name,
		body.Address.Street, body.Address.City, body.Address.PostalCode, body.Address.Country,
		lockerCounts,
	)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.CreateMachine.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedObject{Id: machineID.Bytes()})
}

// ListMachinesAdmin handles GET /api/v1/admin/machines - machines with locker
// detail. Admin only.
func (s *Server) ListMachinesAdmin(ctx echo.Context, params servers.ListMachinesAdminParams) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewListMachinesAdminQuery(caller, intOrZero(params.Page), intOrZero(params.Size))
	if err != nil {
		return jsonError(ctx, err)
	}

	page, err := s.queries.ListMachinesAdmin.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	items := make([]servers.MachineAdmin, len(page.Items))
	for i, machine := range page.Items {
		lockers := make([]servers.Locker, len(machine.Lockers))
		for j, locker := range machine.Lockers {
			lockers[j] = servers.Locker{
				Id:        locker.ID.Bytes(),
				Size:      servers.ParcelSize(locker.Size.String()),
				Available: locker.Available,
			}
		}
		items[i] = servers.MachineAdmin{
			Id:      machine.ID.Bytes(),
			Name:    machine.Name,
			Address: addressFieldsFromSummary(machine.Address),
			Lockers: lockers,
		}
	}

	return ctx.JSON(http.StatusOK, servers.MachineAdminPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	})
}

// CreateAddress handles POST /api/v1/addresses - stores a new address book entry.
func (s *Server) CreateAddress(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var body servers.CreateAddressJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	addressID := kernel.NewUUID()
	cmd, err := commands.NewCreateAddressCommand(
		addressID, caller.ID,
		body.Street, body.City, body.PostalCode, body.Country,
	)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.CreateAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedObject{Id: addressID.Bytes()})
}

// ListAddresses handles GET /api/v1/addresses.
func (s *Server) ListAddresses(ctx echo.Context, params servers.ListAddressesParams) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var scope queries.AddressScope
	switch params.Scope {
	case servers.ListAddressesParamsScopeAll:
		scope = queries.AddressScopeAll
	case servers.ListAddressesParamsScopeMine:
		scope = queries.AddressScopeMine
	default:
		return badRequest(ctx, "Invalid address scope")
	}

	query, err := queries.NewListAddressesQuery(scope, caller, intOrZero(params.Page), intOrZero(params.Size))
	if err != nil {
		return jsonError(ctx, err)
	}

	page, err := s.queries.ListAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	items := make([]servers.Address, len(page.Items))
	for i, view := range page.Items {
		items[i] = addressFromView(view)
	}

	return ctx.JSON(http.StatusOK, servers.AddressPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	})
}

// GetAddress handles GET /api/v1/addresses/{addressId}.
func (s *Server) GetAddress(ctx echo.Context, addressId openapi_types.UUID) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	id, err := toKernelUUID(addressId, "addressId")
	if err != nil {
		return jsonError(ctx, err)
	}
	query, err := queries.NewGetAddressQuery(id, caller)
	if err != nil {
		return jsonError(ctx, err)
	}

	view, err := s.queries.GetAddress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addressFromView(view))
}

// UpdateAddress handles PUT /api/v1/addresses/{addressId}.
func (s *Server) UpdateAddress(ctx echo.Context, addressId openapi_types.UUID) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var body servers.UpdateAddressJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(addressId, "addressId")
	if err != nil {
		return jsonError(ctx, err)
	}
	cmd, err := commands.NewUpdateAddressCommand(
		id, caller.ID,
		body.Street, body.City, body.PostalCode, body.Country,
	)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.UpdateAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAddress handles DELETE /api/v1/addresses/{addressId}.
func (s *Server) DeleteAddress(ctx echo.Context, addressId openapi_types.UUID) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	id, err := toKernelUUID(addressId, "addressId")
	if err != nil {
		return jsonError(ctx, err)
	}
	cmd, err := commands.NewRemoveAddressCommand(id, caller.ID)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.RemoveAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateContact handles POST /api/v1/contacts - stores a new contact book entry.
func (s *Server) CreateContact(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var body servers.CreateContactJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	contactID := kernel.NewUUID()
	cmd, err := commands.NewCreateContactCommand(contactID, caller.ID, body.FullName, body.Phone, body.Email)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.CreateContact.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedObject{Id: contactID.Bytes()})
}

// GetContact handles GET /api/v1/contacts/{contactId}.
func (s *Server) GetContact(ctx echo.Context, contactId openapi_types.UUID) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	id, err := toKernelUUID(contactId, "contactId")
	if err != nil {
		return jsonError(ctx, err)
	}
	query, err := queries.NewGetContactQuery(id, caller)
	if err != nil {
		return jsonError(ctx, err)
	}

	view, err := s.queries.GetContact.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	response := servers.Contact{
		Id:       view.ID.Bytes(),
		FullName: view.FullName,
		Phone:    view.Phone,
		Email:    view.Email,
	}
	if view.Owner != nil {
		ownerID := view.Owner.Bytes()
		response.OwnerId = &ownerID
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListUsers handles GET /api/v1/users. Admin only.
func (s *Server) ListUsers(ctx echo.Context, params servers.ListUsersParams) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var role *account.Role
	if params.Role != nil {
		parsed, err := account.RoleFromString(*params.Role)
		if err != nil {
			return jsonError(ctx, err)
		}
		role = &parsed
	}

	query, err := queries.NewListUsersQuery(caller, intOrZero(params.Page), intOrZero(params.Size), params.Email, role)
	if err != nil {
		return jsonError(ctx, err)
	}

	page, err := s.queries.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	items := make([]servers.User, len(page.Items))
	for i, user := range page.Items {
		items[i] = servers.User{
			Id:        user.ID.Bytes(),
			Email:     user.Email,
			Role:      user.Role.String(),
			CreatedAt: user.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.UserPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	})
}

// ChangeUserRole handles PUT /api/v1/users/{userId}/role. Admin only.
func (s *Server) ChangeUserRole(ctx echo.Context, userId openapi_types.UUID) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !caller.Role.IsAdmin() {
		return forbidden(ctx, "changing user roles requires admin role")
	}

	var body servers.ChangeUserRoleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(userId, "userId")
	if err != nil {
		return jsonError(ctx, err)
	}
	role, err := account.RoleFromString(body.Role)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewChangeUserRoleCommand(id, role, caller.ID)
	if err != nil {
		return jsonError(ctx, err)
	}
	if err := s.commands.ChangeUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toKernelUUID(id openapi_types.UUID, paramName string) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return converted, nil
}

func toOptionalKernelUUID(id *openapi_types.UUID, paramName string) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toKernelUUID(*id, paramName)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func addressFieldsFromSummary(summary queries.AddressSummary) servers.AddressFields {
	return servers.AddressFields{
		Street:     summary.Street,
		City:       summary.City,
		PostalCode: summary.PostalCode,
		Country:    summary.Country,
	}
}

func addressFromSummary(summary queries.AddressSummary) servers.Address {
	return servers.Address{
		Id:         summary.ID.Bytes(),
		Street:     summary.Street,
		City:       summary.City,
		PostalCode: summary.PostalCode,
		Country:    summary.Country,
	}
}

func addressFromView(view queries.AddressView) servers.Address {
	address := addressFromSummary(view.AddressSummary)
	if view.Owner != nil {
		ownerID := view.Owner.Bytes()
		address.OwnerId = &ownerID
	}
	return address
}
