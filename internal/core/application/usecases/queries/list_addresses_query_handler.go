package queries

import (
	"context"
	"database/sql"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAddressesQueryHandler pages through saved addresses.
type ListAddressesQueryHandler struct {
	db *gorm.DB
}

// NewListAddressesQueryHandler creates a handler for address listings.
// Requires a GORM database connection for query execution.
func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

// Handle executes the listing, ordered by city then street.
func (h ListAddressesQueryHandler) Handle(
	ctx context.Context,
	query ListAddressesQuery,
) (ListAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAddressesQueryResponse{}, err
	}

	where := "TRUE"
	args := make([]any, 0, 1)
	if query.Scope() == AddressScopeMine {
		where = "user_id = ?"
		args = append(args, query.Caller().ID.Bytes())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM addresses WHERE "+where, args...).
		Row().Scan(&total)
	if err != nil {
		return ListAddressesQueryResponse{}, err
	}

	pageArgs := append(args, query.Size(), (query.Page()-1)*query.Size())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, street, city, postal_code, country, user_id
		FROM addresses
		WHERE `+where+`
		ORDER BY city, street
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListAddressesQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]AddressView, 0)
	for rows.Next() {
		item, scanErr := scanAddressView(rows)
		if scanErr != nil {
			return ListAddressesQueryResponse{}, scanErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return ListAddressesQueryResponse{}, err
	}

	return ListAddressesQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}

func scanAddressView(rows *sql.Rows) (AddressView, error) {
	var (
		id     uuid.UUID
		userID uuid.NullUUID
		item   AddressView
	)
	err := rows.Scan(
		&id, &item.Street, &item.City, &item.PostalCode, &item.Country, &userID,
	)
	if err != nil {
		return AddressView{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AddressView{}, err
	}
	if userID.Valid {
		owner, ownerErr := kernel.UUIDFromBytes(userID.UUID[:])
		if ownerErr != nil {
			return AddressView{}, ownerErr
		}
		item.Owner = &owner
	}

	return item, nil
}
