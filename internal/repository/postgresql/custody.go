package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/custody"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/database"
)

type custodyRepository struct {
	db *database.DB
}

func NewCustodyRepository(db *database.DB) custody.CustodyRepository {
	return &custodyRepository{db: db}
}

// Create implements custody.CustodyRepository.
func (r *custodyRepository) Create(ctx context.Context, item custody.CustodyItem) (custody.CustodyItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO custody_items (
			id, employee_id, item_name, description, serial_number, notes, status, received_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	item.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		item.ID, item.EmployeeID, item.ItemName, item.Description,
		item.SerialNumber, item.Notes, item.Status, item.ReceivedDate,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return custody.CustodyItem{}, fmt.Errorf("failed to create custody item: %w", err)
	}

	return item, nil
}

// List implements custody.CustodyRepository.
func (r *custodyRepository) List(ctx context.Context, employeeID *string) ([]custody.CustodyItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.item_name, c.description, c.serial_number, c.notes,
			   c.status, c.received_date, c.returned_date, c.created_at, c.updated_at,
			   e.full_name, e.department
		FROM custody_items c
		JOIN employees e ON e.id = c.employee_id
	`

	var args []interface{}
	if employeeID != nil {
		query += ` WHERE c.employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY c.received_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list custody items: %w", err)
	}
	defer rows.Close()

	var result []custody.CustodyItem
	for rows.Next() {
		var item custody.CustodyItem
		err := rows.Scan(
			&item.ID, &item.EmployeeID, &item.ItemName, &item.Description,
			&item.SerialNumber, &item.Notes, &item.Status, &item.ReceivedDate,
			&item.ReturnedDate, &item.CreatedAt, &item.UpdatedAt,
			&item.EmployeeName, &item.EmployeeDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custody item row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate custody item rows: %w", err)
	}

	return result, nil
}

// UpdateStatus implements custody.CustodyRepository. Moving an item to
// returned stamps the return date; moving it back clears it.
func (r *custodyRepository) UpdateStatus(ctx context.Context, id string, status custody.CustodyStatus) (custody.CustodyItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE custody_items
		SET status = $2,
			returned_date = CASE WHEN $2 = 'returned' THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, item_name, description, serial_number, notes,
			status, received_date, returned_date, created_at, updated_at
	`

	var item custody.CustodyItem
	err := q.QueryRow(ctx, query, id, status).Scan(
		&item.ID, &item.EmployeeID, &item.ItemName, &item.Description,
		&item.SerialNumber, &item.Notes, &item.Status, &item.ReceivedDate,
		&item.ReturnedDate, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return custody.CustodyItem{}, custody.ErrCustodyItemNotFound
		}
		return custody.CustodyItem{}, fmt.Errorf("failed to update custody item status: %w", err)
	}

	return item, nil
}
