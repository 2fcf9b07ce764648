// Package fixtures provides sample employees for tests and local seeding.
package fixtures

import (
	"time"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DurgaMahesh is a single, full-time engineer hired by referral.
func DurgaMahesh() employee.Employee {
	return employee.Employee{
		FirstName:             "Durga Mahesh",
		LastName:              "Kasala",
		Email:                 "ramesh@gmail.com",
		PhoneNumber:           "+917842630339",
		Gender:                employee.GenderMale,
		DateOfBirth:           date(2002, time.February, 7),
		HireDate:              date(2024, time.July, 1),
		JobTitle:              "Software Engineer",
		Department:            "Engineering",
		Salary:                decimal.NewFromInt(50000),
		Address:               "123 Main St",
		City:                  "Bangalore",
		State:                 "Karnataka",
		PostalCode:            "560001",
		Country:               "India",
		MaritalStatus:         employee.MaritalStatusSingle,
		EmergencyContactName:  "Venkata",
		EmergencyContactPhone: "+919876543210",
		HireSource:            employee.HireSourceReferral,
		EmploymentStatus:      employee.EmploymentStatusFullTime,
	}
}

// ArjunNarayan is a married senior engineer promoted internally.
func ArjunNarayan() employee.Employee {
	return employee.Employee{
		FirstName:             "Arjun",
		LastName:              "Narayan",
		Email:                 "arjun.narayan@example.com",
		PhoneNumber:           "+919876543210",
		Gender:                employee.GenderMale,
		DateOfBirth:           date(1990, time.May, 25),
		HireDate:              date(2015, time.March, 16),
		JobTitle:              "Senior Software Engineer",
		Department:            "Engineering",
		Salary:                decimal.NewFromInt(80000),
		Address:               "789 Temple Street",
		City:                  "Chennai",
		State:                 "Tamil Nadu",
		PostalCode:            "600001",
		Country:               "India",
		MaritalStatus:         employee.MaritalStatusMarried,
		EmergencyContactName:  "Lakshmi Narayan",
		EmergencyContactPhone: "+919876543211",
		HireSource:            employee.HireSourceInternalPromotion,
		EmploymentStatus:      employee.EmploymentStatusFullTime,
	}
}

// WithEmail returns e with its email replaced.
func WithEmail(e employee.Employee, email string) employee.Employee {
	e.Email = email
	return e
}

// WithID returns e with its id replaced.
func WithID(e employee.Employee, id int64) employee.Employee {
	e.ID = id
	return e
}
