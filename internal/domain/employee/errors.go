package employee

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateResource signals a uniqueness violation on create.
	ErrDuplicateResource = errors.New("duplicate resource")
	// ErrEmailExists is the email variant of ErrDuplicateResource. errors.Is matches both.
	ErrEmailExists = fmt.Errorf("%w: email already registered", ErrDuplicateResource)

	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidEmployeeID    = errors.New("employee id must be a positive integer")
	ErrInvalidLookup        = errors.New("lookup requires email or both first_name and last_name")
	ErrInvalidGender        = errors.New("gender must be MALE, FEMALE or OTHER")
	ErrInvalidMaritalStatus = errors.New("marital_status must be SINGLE, MARRIED, DIVORCED or WIDOWED")
	ErrInvalidHireSource    = errors.New("hire_source must be REFERRAL, INTERNAL_PROMOTION, JOB_PORTAL, CAMPUS, AGENCY or DIRECT")
	ErrInvalidEmployment    = errors.New("employment_status must be FULL_TIME, PART_TIME, CONTRACT, INTERN or TEMPORARY")
)
