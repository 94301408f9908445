package queries

import (
	"context"
	"database/sql"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMachinesQueryHandler serves the public parcel machine directory.
type ListMachinesQueryHandler struct {
	db *gorm.DB
}

// NewListMachinesQueryHandler creates a handler for the public directory.
// Requires a GORM database connection for query execution.
func NewListMachinesQueryHandler(db *gorm.DB) ListMachinesQueryHandler {
	return ListMachinesQueryHandler{db: db}
}

// Handle returns every machine with its address, sorted by name.
func (h ListMachinesQueryHandler) Handle(
	ctx context.Context,
	query ListMachinesQuery,
) ([]MachineSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			a.id,
			a.street,
			a.city,
			a.postal_code,
			a.country
		FROM parcel_machines m
		JOIN addresses a ON a.id = m.address_id
		ORDER BY m.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	machines := make([]MachineSummary, 0)
	for rows.Next() {
		var item MachineSummary
		var machineID, addressID uuid.UUID

		err = rows.Scan(
			&machineID, &item.Name,
			&addressID, &item.Address.Street, &item.Address.City,
			&item.Address.PostalCode, &item.Address.Country,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(machineID[:]); err != nil {
			return nil, err
		}
		if item.Address.ID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
			return nil, err
		}
		machines = append(machines, item)
	}

	return machines, rows.Err()
}

// ListMachinesAdminQueryHandler serves the paged administrative machine
// listing with locker occupancy.
type ListMachinesAdminQueryHandler struct {
	db *gorm.DB
}

// NewListMachinesAdminQueryHandler creates a handler for the admin listing.
// Requires a GORM database connection for query execution.
func NewListMachinesAdminQueryHandler(db *gorm.DB) ListMachinesAdminQueryHandler {
	return ListMachinesAdminQueryHandler{db: db}
}

// Handle returns one page of machines, each with its lockers, plus the
// total machine count. Machines are sorted by name, lockers by size.
func (h ListMachinesAdminQueryHandler) Handle(
	ctx context.Context,
	query ListMachinesAdminQuery,
) (ListMachinesAdminQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListMachinesAdminQueryResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM parcel_machines`).Row().Scan(&total)
	if err != nil {
		return ListMachinesAdminQueryResponse{}, err
	}

	items, machineIDs, err := h.loadMachinePage(ctx, query)
	if err != nil {
		return ListMachinesAdminQueryResponse{}, err
	}

	if len(items) > 0 {
		if err = h.attachLockers(ctx, items, machineIDs); err != nil {
			return ListMachinesAdminQueryResponse{}, err
		}
	}

	return ListMachinesAdminQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}

func (h ListMachinesAdminQueryHandler) loadMachinePage(
	ctx context.Context,
	query ListMachinesAdminQuery,
) ([]MachineAdminView, []uuid.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			a.id,
			a.street,
			a.city,
			a.postal_code,
			a.country
		FROM parcel_machines m
		JOIN addresses a ON a.id = m.address_id
		ORDER BY m.name
		LIMIT ? OFFSET ?
	`, query.Size(), (query.Page()-1)*query.Size()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]MachineAdminView, 0)
	machineIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var item MachineAdminView
		var machineID, addressID uuid.UUID

		err = rows.Scan(
			&machineID, &item.Name,
			&addressID, &item.Address.Street, &item.Address.City,
			&item.Address.PostalCode, &item.Address.Country,
		)
		if err != nil {
			return nil, nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(machineID[:]); err != nil {
			return nil, nil, err
		}
		if item.Address.ID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
			return nil, nil, err
		}
		item.Lockers = make([]LockerSummary, 0)
		items = append(items, item)
		machineIDs = append(machineIDs, machineID)
	}

	return items, machineIDs, rows.Err()
}

func (h ListMachinesAdminQueryHandler) attachLockers(
	ctx context.Context,
	items []MachineAdminView,
	machineIDs []uuid.UUID,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, machine_id, size, available
		FROM lockers
		WHERE machine_id IN ?
		ORDER BY size, id
	`, machineIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	byMachine := make(map[kernel.UUID]int, len(items))
	for i, item := range items {
		byMachine[item.ID] = i
	}

	for rows.Next() {
		locker, machineID, scanErr := scanLockerSummary(rows)
		if scanErr != nil {
			return scanErr
		}
		if i, ok := byMachine[machineID]; ok {
			items[i].Lockers = append(items[i].Lockers, locker)
		}
	}

	return rows.Err()
}

func scanLockerSummary(rows *sql.Rows) (LockerSummary, kernel.UUID, error) {
	var (
		id, machineID uuid.UUID
		sizeStr       string
		available     bool
	)
	if err := rows.Scan(&id, &machineID, &sizeStr, &available); err != nil {
		return LockerSummary{}, kernel.UUID{}, err
	}

	lockerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LockerSummary{}, kernel.UUID{}, err
	}
	owner, err := kernel.UUIDFromBytes(machineID[:])
	if err != nil {
		return LockerSummary{}, kernel.UUID{}, err
	}
	size, err := parcel.SizeFromString(sizeStr)
	if err != nil {
		return LockerSummary{}, kernel.UUID{}, err
	}

	return LockerSummary{ID: lockerID, Size: size, Available: available}, owner, nil
}
