package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

type Employee struct {
	ID         string
	FullName   string
	JobTitle   string
	Department string
	Email      *string
	Phone      *string
	Address    *string
	Gender     Gender
	BirthDate  *time.Time
	HireDate   *time.Time
	Manager    *string
	Status     EmploymentStatus
	Salary     decimal.Decimal
	BankName   *string
	IBAN       *string
	AvatarURL  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
