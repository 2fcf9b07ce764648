package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the only persisted entity. ID is assigned by storage on create.
type Employee struct {
	ID                    int64
	FirstName             string
	LastName              string
	Email                 string
	PhoneNumber           string
	Gender                Gender
	DateOfBirth           time.Time
	HireDate              time.Time
	JobTitle              string
	Department            string
	Salary                decimal.Decimal
	Address               string
	City                  string
	State                 string
	PostalCode            string
	Country               string
	MaritalStatus         MaritalStatus
	EmergencyContactName  string
	EmergencyContactPhone string
	HireSource            HireSource
	EmploymentStatus      EmploymentStatus
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "SINGLE"
	MaritalStatusMarried  MaritalStatus = "MARRIED"
	MaritalStatusDivorced MaritalStatus = "DIVORCED"
	MaritalStatusWidowed  MaritalStatus = "WIDOWED"
)

func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed:
		return true
	}
	return false
}

type HireSource string

const (
	HireSourceReferral          HireSource = "REFERRAL"
	HireSourceInternalPromotion HireSource = "INTERNAL_PROMOTION"
	HireSourceJobPortal         HireSource = "JOB_PORTAL"
	HireSourceCampus            HireSource = "CAMPUS"
	HireSourceAgency            HireSource = "AGENCY"
	HireSourceDirect            HireSource = "DIRECT"
)

func (h HireSource) IsValid() bool {
	switch h {
	case HireSourceReferral, HireSourceInternalPromotion, HireSourceJobPortal,
		HireSourceCampus, HireSourceAgency, HireSourceDirect:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	EmploymentStatusFullTime  EmploymentStatus = "FULL_TIME"
	EmploymentStatusPartTime  EmploymentStatus = "PART_TIME"
	EmploymentStatusContract  EmploymentStatus = "CONTRACT"
	EmploymentStatusIntern    EmploymentStatus = "INTERN"
	EmploymentStatusTemporary EmploymentStatus = "TEMPORARY"
)

func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentStatusFullTime, EmploymentStatusPartTime, EmploymentStatusContract,
		EmploymentStatusIntern, EmploymentStatusTemporary:
		return true
	}
	return false
}
