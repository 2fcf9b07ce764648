package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-service/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// EmployeeResponse is the wire representation of an Employee.
type EmployeeResponse struct {
	ID                    int64           `json:"id"`
	FirstName             string          `json:"first_name"`
	LastName              string          `json:"last_name"`
	Email                 string          `json:"email"`
	PhoneNumber           string          `json:"phone_number"`
	Gender                string          `json:"gender"`
	DateOfBirth           string          `json:"date_of_birth"`
	HireDate              string          `json:"hire_date"`
	JobTitle              string          `json:"job_title"`
	Department            string          `json:"department"`
	Salary                decimal.Decimal `json:"salary"`
	Address               string          `json:"address"`
	City                  string          `json:"city"`
	State                 string          `json:"state"`
	PostalCode            string          `json:"postal_code"`
	Country               string          `json:"country"`
	MaritalStatus         string          `json:"marital_status"`
	EmergencyContactName  string          `json:"emergency_contact_name"`
	EmergencyContactPhone string          `json:"emergency_contact_phone"`
	HireSource            string          `json:"hire_source"`
	EmploymentStatus      string          `json:"employment_status"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		FirstName:             e.FirstName,
		LastName:              e.LastName,
		Email:                 e.Email,
		PhoneNumber:           e.PhoneNumber,
		Gender:                string(e.Gender),
		DateOfBirth:           e.DateOfBirth.Format(dateLayout),
		HireDate:              e.HireDate.Format(dateLayout),
		JobTitle:              e.JobTitle,
		Department:            e.Department,
		Salary:                e.Salary,
		Address:               e.Address,
		City:                  e.City,
		State:                 e.State,
		PostalCode:            e.PostalCode,
		Country:               e.Country,
		MaritalStatus:         string(e.MaritalStatus),
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		HireSource:            string(e.HireSource),
		EmploymentStatus:      string(e.EmploymentStatus),
	}
}

func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

// CreateEmployeeRequest carries every field of a new employee. An id in the
// body is not accepted; storage assigns it.
type CreateEmployeeRequest struct {
	FirstName             string           `json:"first_name"`
	LastName              string           `json:"last_name"`
	Email                 string           `json:"email"`
	PhoneNumber           string           `json:"phone_number"`
	Gender                string           `json:"gender"`
	DateOfBirth           string           `json:"date_of_birth"`
	HireDate              string           `json:"hire_date"`
	JobTitle              string           `json:"job_title"`
	Department            string           `json:"department"`
	Salary                *decimal.Decimal `json:"salary"`
	Address               string           `json:"address"`
	City                  string           `json:"city"`
	State                 string           `json:"state"`
	PostalCode            string           `json:"postal_code"`
	Country               string           `json:"country"`
	MaritalStatus         string           `json:"marital_status"`
	EmergencyContactName  string           `json:"emergency_contact_name"`
	EmergencyContactPhone string           `json:"emergency_contact_phone"`
	HireSource            string           `json:"hire_source"`
	EmploymentStatus      string           `json:"employment_status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := []struct {
		field, value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"phone_number", r.PhoneNumber},
		{"gender", r.Gender},
		{"date_of_birth", r.DateOfBirth},
		{"hire_date", r.HireDate},
		{"job_title", r.JobTitle},
		{"department", r.Department},
		{"address", r.Address},
		{"city", r.City},
		{"state", r.State},
		{"postal_code", r.PostalCode},
		{"country", r.Country},
		{"marital_status", r.MaritalStatus},
		{"emergency_contact_name", r.EmergencyContactName},
		{"emergency_contact_phone", r.EmergencyContactPhone},
		{"hire_source", r.HireSource},
		{"employment_status", r.EmploymentStatus},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}
	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary is required",
		})
	}

	// Only format-check what is present; missing fields are reported above.
	fields := employeeFields{
		Email:                 &r.Email,
		PhoneNumber:           &r.PhoneNumber,
		EmergencyContactPhone: &r.EmergencyContactPhone,
		Gender:                &r.Gender,
		MaritalStatus:         &r.MaritalStatus,
		HireSource:            &r.HireSource,
		EmploymentStatus:      &r.EmploymentStatus,
		DateOfBirth:           &r.DateOfBirth,
		HireDate:              &r.HireDate,
		Salary:                r.Salary,
	}
	errs = append(errs, fields.validateFormats(true)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEmployee converts a validated request. Dates are parsed with the same
// trimming rules as Validate; a date that does not parse is an error.
func (r *CreateEmployeeRequest) ToEmployee() (Employee, error) {
	var errs validator.ValidationErrors
	dob, ok := validator.IsValidDate(r.DateOfBirth)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be in YYYY-MM-DD format"})
	}
	hireDate, ok := validator.IsValidDate(r.HireDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return Employee{}, errs
	}

	var salary decimal.Decimal
	if r.Salary != nil {
		salary = *r.Salary
	}

	return Employee{
		FirstName:             strings.TrimSpace(r.FirstName),
		LastName:              strings.TrimSpace(r.LastName),
		Email:                 NormalizeEmail(r.Email),
		PhoneNumber:           strings.TrimSpace(r.PhoneNumber),
		Gender:                Gender(strings.ToUpper(strings.TrimSpace(r.Gender))),
		DateOfBirth:           dob,
		HireDate:              hireDate,
		JobTitle:              strings.TrimSpace(r.JobTitle),
		Department:            strings.TrimSpace(r.Department),
		Salary:                salary,
		Address:               strings.TrimSpace(r.Address),
		City:                  strings.TrimSpace(r.City),
		State:                 strings.TrimSpace(r.State),
		PostalCode:            strings.TrimSpace(r.PostalCode),
		Country:               strings.TrimSpace(r.Country),
		MaritalStatus:         MaritalStatus(strings.ToUpper(strings.TrimSpace(r.MaritalStatus))),
		EmergencyContactName:  strings.TrimSpace(r.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(r.EmergencyContactPhone),
		HireSource:            HireSource(strings.ToUpper(strings.TrimSpace(r.HireSource))),
		EmploymentStatus:      EmploymentStatus(strings.ToUpper(strings.TrimSpace(r.EmploymentStatus))),
	}, nil
}

// UpdateEmployeeRequest changes only the fields that are present.
type UpdateEmployeeRequest struct {
	ID                    int64            `json:"-"` // From URL
	FirstName             *string          `json:"first_name,omitempty"`
	LastName              *string          `json:"last_name,omitempty"`
	Email                 *string          `json:"email,omitempty"`
	PhoneNumber           *string          `json:"phone_number,omitempty"`
	Gender                *string          `json:"gender,omitempty"`
	DateOfBirth           *string          `json:"date_of_birth,omitempty"`
	HireDate              *string          `json:"hire_date,omitempty"`
	JobTitle              *string          `json:"job_title,omitempty"`
	Department            *string          `json:"department,omitempty"`
	Salary                *decimal.Decimal `json:"salary,omitempty"`
	Address               *string          `json:"address,omitempty"`
	City                  *string          `json:"city,omitempty"`
	State                 *string          `json:"state,omitempty"`
	PostalCode            *string          `json:"postal_code,omitempty"`
	Country               *string          `json:"country,omitempty"`
	MaritalStatus         *string          `json:"marital_status,omitempty"`
	EmergencyContactName  *string          `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string          `json:"emergency_contact_phone,omitempty"`
	HireSource            *string          `json:"hire_source,omitempty"`
	EmploymentStatus      *string          `json:"employment_status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}

	optional := []struct {
		field string
		value *string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"phone_number", r.PhoneNumber},
		{"gender", r.Gender},
		{"date_of_birth", r.DateOfBirth},
		{"hire_date", r.HireDate},
		{"job_title", r.JobTitle},
		{"department", r.Department},
		{"address", r.Address},
		{"city", r.City},
		{"state", r.State},
		{"postal_code", r.PostalCode},
		{"country", r.Country},
		{"marital_status", r.MaritalStatus},
		{"emergency_contact_name", r.EmergencyContactName},
		{"emergency_contact_phone", r.EmergencyContactPhone},
		{"hire_source", r.HireSource},
		{"employment_status", r.EmploymentStatus},
	}
	for _, f := range optional {
		if f.value != nil && validator.IsEmpty(*f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " must not be empty if provided",
			})
		}
	}

	fields := employeeFields{
		Email:                 r.Email,
		PhoneNumber:           r.PhoneNumber,
		EmergencyContactPhone: r.EmergencyContactPhone,
		Gender:                r.Gender,
		MaritalStatus:         r.MaritalStatus,
		HireSource:            r.HireSource,
		EmploymentStatus:      r.EmploymentStatus,
		DateOfBirth:           r.DateOfBirth,
		HireDate:              r.HireDate,
		Salary:                r.Salary,
	}
	errs = append(errs, fields.validateFormats(r.DateOfBirth != nil && r.HireDate != nil)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyTo returns current with the present fields of r written over it.
// The identifier is always taken from current. A present date that does not
// parse is an error.
func (r *UpdateEmployeeRequest) ApplyTo(current Employee) (Employee, error) {
	e := current
	var errs validator.ValidationErrors

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setDate := func(field string, dst *time.Time, src *string) {
		if src == nil {
			return
		}
		t, ok := validator.IsValidDate(*src)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be in YYYY-MM-DD format"})
			return
		}
		*dst = t
	}

	setString(&e.FirstName, r.FirstName)
	setString(&e.LastName, r.LastName)
	if r.Email != nil {
		e.Email = NormalizeEmail(*r.Email)
	}
	setString(&e.PhoneNumber, r.PhoneNumber)
	if r.Gender != nil {
		e.Gender = Gender(strings.ToUpper(strings.TrimSpace(*r.Gender)))
	}
	setDate("date_of_birth", &e.DateOfBirth, r.DateOfBirth)
	setDate("hire_date", &e.HireDate, r.HireDate)
	setString(&e.JobTitle, r.JobTitle)
	setString(&e.Department, r.Department)
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
	setString(&e.Address, r.Address)
	setString(&e.City, r.City)
	setString(&e.State, r.State)
	setString(&e.PostalCode, r.PostalCode)
	setString(&e.Country, r.Country)
	if r.MaritalStatus != nil {
		e.MaritalStatus = MaritalStatus(strings.ToUpper(strings.TrimSpace(*r.MaritalStatus)))
	}
	setString(&e.EmergencyContactName, r.EmergencyContactName)
	setString(&e.EmergencyContactPhone, r.EmergencyContactPhone)
	if r.HireSource != nil {
		e.HireSource = HireSource(strings.ToUpper(strings.TrimSpace(*r.HireSource)))
	}
	if r.EmploymentStatus != nil {
		e.EmploymentStatus = EmploymentStatus(strings.ToUpper(strings.TrimSpace(*r.EmploymentStatus)))
	}

	if len(errs) > 0 {
		return Employee{}, errs
	}

	e.ID = current.ID
	return e, nil
}

// Merge applies r to current and re-checks the date order of the result,
// since either date may come from the stored record.
func (r *UpdateEmployeeRequest) Merge(current Employee) (Employee, error) {
	merged, err := r.ApplyTo(current)
	if err != nil {
		return Employee{}, err
	}
	if !merged.DateOfBirth.Before(merged.HireDate) {
		return Employee{}, validator.ValidationErrors{{
			Field:   "hire_date",
			Message: "hire_date must be after date_of_birth",
		}}
	}
	return merged, nil
}

// LookupRequest selects an employee by email, or by first and last name.
type LookupRequest struct {
	Email     string
	FirstName string
	LastName  string
}

func (r *LookupRequest) Validate() error {
	byEmail := !validator.IsEmpty(r.Email)
	byName := !validator.IsEmpty(r.FirstName) && !validator.IsEmpty(r.LastName)
	if byEmail == byName {
		return ErrInvalidLookup
	}
	return nil
}

func (r *LookupRequest) ByEmail() bool {
	return !validator.IsEmpty(r.Email)
}

// employeeFields groups the format-checked fields shared by create and update.
// Nil and blank values are skipped.
type employeeFields struct {
	Email                 *string
	PhoneNumber           *string
	EmergencyContactPhone *string
	Gender                *string
	MaritalStatus         *string
	HireSource            *string
	EmploymentStatus      *string
	DateOfBirth           *string
	HireDate              *string
	Salary                *decimal.Decimal
}

func present(s *string) bool {
	return s != nil && !validator.IsEmpty(*s)
}

func (f employeeFields) validateFormats(checkDateOrder bool) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if present(f.Email) && !validator.IsValidEmail(strings.TrimSpace(*f.Email)) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if present(f.PhoneNumber) && !validator.IsValidPhoneNumber(*f.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number must be 7-15 digits with an optional leading +"})
	}
	if present(f.EmergencyContactPhone) && !validator.IsValidPhoneNumber(*f.EmergencyContactPhone) {
		errs = append(errs, validator.ValidationError{Field: "emergency_contact_phone", Message: "emergency_contact_phone must be 7-15 digits with an optional leading +"})
	}
	if present(f.Gender) && !Gender(strings.ToUpper(strings.TrimSpace(*f.Gender))).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: ErrInvalidGender.Error()})
	}
	if present(f.MaritalStatus) && !MaritalStatus(strings.ToUpper(strings.TrimSpace(*f.MaritalStatus))).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: ErrInvalidMaritalStatus.Error()})
	}
	if present(f.HireSource) && !HireSource(strings.ToUpper(strings.TrimSpace(*f.HireSource))).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "hire_source", Message: ErrInvalidHireSource.Error()})
	}
	if present(f.EmploymentStatus) && !EmploymentStatus(strings.ToUpper(strings.TrimSpace(*f.EmploymentStatus))).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: ErrInvalidEmployment.Error()})
	}

	var dob, hireDate time.Time
	var dobOK, hireOK bool
	if present(f.DateOfBirth) {
		dob, dobOK = validator.IsValidDate(*f.DateOfBirth)
		switch {
		case !dobOK:
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be in YYYY-MM-DD format"})
		case validator.IsFutureDate(dob):
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth cannot be in the future"})
		}
	}
	if present(f.HireDate) {
		hireDate, hireOK = validator.IsValidDate(*f.HireDate)
		if !hireOK {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
		}
	}
	if checkDateOrder && dobOK && hireOK && !dob.Before(hireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be after date_of_birth"})
	}

	if f.Salary != nil && f.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	return errs
}

// NormalizeEmail is the stored form of an email: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
