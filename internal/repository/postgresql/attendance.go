package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in_time, check_out_time, worked_hours, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	newAttendance.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckInTime,
		newAttendance.CheckOutTime,
		newAttendance.WorkedHours,
		newAttendance.Status,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	if err != nil {
		// One ledger row per (employee, day); the loser of a concurrent
		// insert sees the unique violation
		if strings.Contains(err.Error(), "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in_time, check_out_time, worked_hours, status,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.WorkedHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOutTime string, workedHours decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_time = $2, worked_hours = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, checkOutTime, workedHours)
	if err != nil {
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
			   a.worked_hours, a.status, a.created_at, a.updated_at,
			   e.full_name, e.department, e.avatar_url
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
	`

	var args []interface{}
	switch {
	case filter.Date != nil:
		query += ` WHERE a.date = $1`
		args = append(args, *filter.Date)
	case filter.Month != nil:
		query += ` WHERE to_char(a.date, 'YYYY-MM') = $1`
		args = append(args, *filter.Month)
	}
	query += ` ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
			&att.WorkedHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeDepartment, &att.EmployeeAvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return result, nil
}

// ListByEmployeeAndMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in_time, check_out_time, worked_hours, status,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for month: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
			&att.WorkedHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return result, nil
}
