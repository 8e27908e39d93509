package custody

import "time"

type CustodyStatus string

const (
	CustodyStatusHeld     CustodyStatus = "in-custody"
	CustodyStatusReturned CustodyStatus = "returned"
)

// CustodyItem is a company asset handed to an employee. ReturnedDate is
// stamped when the item moves to the returned status.
type CustodyItem struct {
	ID           string
	EmployeeID   string
	ItemName     string
	Description  *string
	SerialNumber *string
	Notes        *string
	Status       CustodyStatus
	ReceivedDate time.Time
	ReturnedDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined employee display fields
	EmployeeName       *string
	EmployeeDepartment *string
}
