package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler pages through parcels for every listing scope.
// Builds one SQL statement per request from the scope and filters, then
// runs a matching COUNT for the total.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listings.
// Requires a GORM database connection for query execution.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the listing. Results are ordered newest first and the
// response carries the total match count for pagination.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) (ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListParcelsQueryResponse{}, err
	}

	where, args := buildParcelPredicates(query)

	from := "FROM parcels p"
	if query.Scope() == ParcelScopeTracked {
		from += " JOIN subscriptions s ON s.parcel_id = p.id"
	}

	var total int64
	countSQL := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", from, where)
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Row().Scan(&total); err != nil {
		return ListParcelsQueryResponse{}, err
	}

	pageSQL := fmt.Sprintf(`
		SELECT
			p.id,
			p.tracking_number,
			p.status,
			p.size,
			p.sender_id,
			p.courier_id,
			p.origin_id,
			p.destination_id,
			p.created_at,
			p.updated_at
		%s
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT ? OFFSET ?
	`, from, where)
	pageArgs := append(args, query.Size(), (query.Page()-1)*query.Size())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Rows()
	if err != nil {
		return ListParcelsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]ParcelSummary, 0)
	for rows.Next() {
		item, scanErr := scanParcelSummary(rows)
		if scanErr != nil {
			return ListParcelsQueryResponse{}, scanErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return ListParcelsQueryResponse{}, err
	}

	return ListParcelsQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}

// buildParcelPredicates translates the scope and filters into a WHERE
// clause with positional arguments.
func buildParcelPredicates(query ListParcelsQuery) (string, []any) {
	predicates := make([]string, 0, 4)
	args := make([]any, 0, 4)

	switch query.Scope() {
	case ParcelScopeMine:
		predicates = append(predicates, "p.sender_id = ?")
		args = append(args, query.Caller().ID.Bytes())
	case ParcelScopeAssigned:
		predicates = append(predicates, "p.courier_id = ?")
		args = append(args, query.Caller().ID.Bytes())
	case ParcelScopeAssignable:
		predicates = append(predicates, "p.status = ?", "p.courier_id IS NULL")
		args = append(args, parcel.StatusPending.String())
	case ParcelScopeTracked:
		predicates = append(predicates, "s.user_id = ?")
		args = append(args, query.Caller().ID.Bytes())
	case ParcelScopeAll:
		// no scope predicate
	}

	filters := query.Filters()
	if filters.TrackingNumber != nil {
		predicates = append(predicates, "p.tracking_number = ?")
		args = append(args, filters.TrackingNumber.String())
	}
	if filters.Status != nil {
		predicates = append(predicates, "p.status = ?")
		args = append(args, filters.Status.String())
	}
	if filters.Size != nil {
		predicates = append(predicates, "p.size = ?")
		args = append(args, filters.Size.String())
	}
	if filters.OriginID != nil {
		predicates = append(predicates, "p.origin_id = ?")
		args = append(args, filters.OriginID.Bytes())
	}
	if filters.DestinationID != nil {
		predicates = append(predicates, "p.destination_id = ?")
		args = append(args, filters.DestinationID.Bytes())
	}
	if filters.SenderID != nil {
		predicates = append(predicates, "p.sender_id = ?")
		args = append(args, filters.SenderID.Bytes())
	}
	if filters.CourierID != nil {
		predicates = append(predicates, "p.courier_id = ?")
		args = append(args, filters.CourierID.Bytes())
	}

	if len(predicates) == 0 {
		return "TRUE", args
	}
	return strings.Join(predicates, " AND "), args
}

func scanParcelSummary(rows *sql.Rows) (ParcelSummary, error) {
	var (
		id, senderID, originID, destinationID uuid.UUID
		courierID                             uuid.NullUUID
		trackingNumberStr                     string
		statusStr, sizeStr                    string
		createdAt, updatedAt                  time.Time
	)

	err := rows.Scan(
		&id, &trackingNumberStr, &statusStr, &sizeStr,
		&senderID, &courierID, &originID, &destinationID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return ParcelSummary{}, err
	}

	item := ParcelSummary{CreatedAt: createdAt, UpdatedAt: updatedAt}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelSummary{}, err
	}
	if item.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ParcelSummary{}, err
	}
	if item.OriginID, err = kernel.UUIDFromBytes(originID[:]); err != nil {
		return ParcelSummary{}, err
	}
	if item.DestinationID, err = kernel.UUIDFromBytes(destinationID[:]); err != nil {
		return ParcelSummary{}, err
	}
	if courierID.Valid {
		courier, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if courierErr != nil {
			return ParcelSummary{}, courierErr
		}
		item.CourierID = &courier
	}
	if item.TrackingNumber, err = kernel.TrackingNumberFromString(trackingNumberStr); err != nil {
		return ParcelSummary{}, err
	}
	if item.Status, err = parcel.StatusFromString(statusStr); err != nil {
		return ParcelSummary{}, err
	}
	if item.Size, err = parcel.SizeFromString(sizeStr); err != nil {
		return ParcelSummary{}, err
	}

	return item, nil
}
