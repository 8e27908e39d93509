package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/payroll"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetByEmployeeAndMonth implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, basic_salary, overtime_hours, overtime_pay,
			   absence_deduction, bonuses, net_salary, status, created_at, updated_at
		FROM payrolls
		WHERE employee_id = $1 AND month = $2
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.OvertimeHours,
		&rec.OvertimePay, &rec.AbsenceDeduction, &rec.Bonuses, &rec.NetSalary,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return &rec, nil
}

// Upsert implements payroll.PayrollRepository. On (employee_id, month)
// conflict only the derived fields are overwritten; status and bonuses
// keep their stored values.
func (r *payrollRepository) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, month, basic_salary, overtime_hours, overtime_pay,
			absence_deduction, bonuses, net_salary, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			overtime_hours = EXCLUDED.overtime_hours,
			overtime_pay = EXCLUDED.overtime_pay,
			absence_deduction = EXCLUDED.absence_deduction,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING id, employee_id, month, basic_salary, overtime_hours, overtime_pay,
			absence_deduction, bonuses, net_salary, status, created_at, updated_at
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Month, record.BasicSalary,
		record.OvertimeHours, record.OvertimePay, record.AbsenceDeduction,
		record.Bonuses, record.NetSalary, record.Status,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.OvertimeHours,
		&rec.OvertimePay, &rec.AbsenceDeduction, &rec.Bonuses, &rec.NetSalary,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return rec, nil
}

// ListByMonth implements payroll.PayrollRepository.
func (r *payrollRepository) ListByMonth(ctx context.Context, month string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.basic_salary, p.overtime_hours,
			   p.overtime_pay, p.absence_deduction, p.bonuses, p.net_salary, p.status,
			   p.created_at, p.updated_at,
			   e.full_name, e.department
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1
		ORDER BY p.employee_id ASC
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var result []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.OvertimeHours,
			&rec.OvertimePay, &rec.AbsenceDeduction, &rec.Bonuses, &rec.NetSalary,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll rows: %w", err)
	}

	return result, nil
}

// MarkPaid implements payroll.PayrollRepository.
func (r *payrollRepository) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, month, basic_salary, overtime_hours, overtime_pay,
			absence_deduction, bonuses, net_salary, status, created_at, updated_at
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id, payroll.PayrollStatusPaid).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.OvertimeHours,
		&rec.OvertimePay, &rec.AbsenceDeduction, &rec.Bonuses, &rec.NetSalary,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to mark payroll record paid: %w", err)
	}

	return rec, nil
}
