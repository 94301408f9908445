package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler pages through registered users for administration.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for the user listing.
// Requires a GORM database connection for query execution.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the listing. Results are ordered by registration date,
// newest first, and the response carries the total match count.
func (h ListUsersQueryHandler) Handle(
	ctx context.Context,
	query ListUsersQuery,
) (ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	predicates := []string{"TRUE"}
	args := make([]any, 0, 2)
	if fragment := query.EmailContains(); fragment != nil {
		predicates = append(predicates, "email ILIKE ?")
		args = append(args, "%"+*fragment+"%")
	}
	if role := query.Role(); role != nil {
		predicates = append(predicates, "role = ?")
		args = append(args, role.String())
	}
	where := strings.Join(predicates, " AND ")

	var total int64
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM users WHERE %s", where)
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Row().Scan(&total); err != nil {
		return ListUsersQueryResponse{}, err
	}

	pageSQL := fmt.Sprintf(`
		SELECT id, email, role, created_at
		FROM users
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, where)
	pageArgs := append(args, query.Size(), (query.Page()-1)*query.Size())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Rows()
	if err != nil {
		return ListUsersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]UserSummary, 0)
	for rows.Next() {
		var item UserSummary
		var id uuid.UUID
		var roleStr string

		if err = rows.Scan(&id, &item.Email, &roleStr, &item.CreatedAt); err != nil {
			return ListUsersQueryResponse{}, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListUsersQueryResponse{}, err
		}
		if item.Role, err = account.RoleFromString(roleStr); err != nil {
			return ListUsersQueryResponse{}, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	return ListUsersQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}
