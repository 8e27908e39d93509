package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/leave"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.Type, request.StartDate,
		request.EndDate, request.Reason, request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason, l.status,
			   l.created_at, l.updated_at,
			   e.full_name, e.job_title, e.department, e.avatar_url
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeJobTitle, &req.EmployeeDepartment,
			&req.EmployeeAvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave request rows: %w", err)
	}

	return result, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, type, start_date, end_date, reason, status,
			created_at, updated_at
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, status).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return req, nil
}
