package schema

// Logical field names of the employees table.
const (
	FieldID                    = "id"
	FieldFirstName             = "firstName"
	FieldLastName              = "lastName"
	FieldEmail                 = "email"
	FieldPhoneNumber           = "phoneNumber"
	FieldGender                = "gender"
	FieldDateOfBirth           = "dateOfBirth"
	FieldHireDate              = "hireDate"
	FieldJobTitle              = "jobTitle"
	FieldDepartment            = "department"
	FieldSalary                = "salary"
	FieldAddress               = "address"
	FieldCity                  = "city"
	FieldState                 = "state"
	FieldPostalCode            = "postalCode"
	FieldCountry               = "country"
	FieldMaritalStatus         = "maritalStatus"
	FieldEmergencyContactName  = "emergencyContactName"
	FieldEmergencyContactPhone = "emergencyContactPhone"
	FieldHireSource            = "hireSource"
	FieldEmploymentStatus      = "employmentStatus"
)

// Employees is the employees table. Column order matches employee.Employee
// and is the scan order of every query built from it.
var Employees = Table{
	Name: "employees",
	Columns: []Column{
		{Field: FieldID, Name: "id", Postgres: "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY", SQLite: "INTEGER PRIMARY KEY AUTOINCREMENT", PrimaryKey: true},
		{Field: FieldFirstName, Name: "first_name", Postgres: "VARCHAR(255)", SQLite: "TEXT"},
		{Field: FieldLastName, Name: "last_name", Postgres: "VARCHAR(255)", SQLite: "TEXT"},
		{Field: FieldEmail, Name: "email", Postgres: "VARCHAR(255)", SQLite: "TEXT", Unique: true},
		{Field: FieldPhoneNumber, Name: "phone_number", Postgres: "VARCHAR(32)", SQLite: "TEXT"},
		{Field: FieldGender, Name: "gender", Postgres: "VARCHAR(16)", SQLite: "TEXT"},
		{Field: FieldDateOfBirth, Name: "date_of_birth", Postgres: "DATE", SQLite: "TEXT"},
		{Field: FieldHireDate, Name: "hire_date", Postgres: "DATE", SQLite: "TEXT"},
		{Field: FieldJobTitle, Name: "job_title", Postgres: "VARCHAR(255)", SQLite: "TEXT"},
		{Field: FieldDepartment, Name: "department", Postgres: "VARCHAR(255)", SQLite: "TEXT"},
		{Field: FieldSalary, Name: "salary", Postgres: "NUMERIC(15,2) CHECK (salary >= 0)", SQLite: "TEXT"},
		{Field: FieldAddress, Name: "address", Postgres: "VARCHAR(255)", SQLite: "TEXT"},
		{Field: FieldCity, Name: "city", Postgres: "VARCHAR(100)", SQLite: "TEXT"},
		{Field: FieldState, Name: "state", Postgres: "VARCHAR(100)", SQLite: "TEXT"},
		{Field: FieldPostalCode, Name: "postal_code", Postgres: "VARCHAR(20)", SQLite: "TEXT"},
		{Field: FieldCountry, Name: "country", Postgres: "VARCHAR(100)", SQLite: "TEXT"},
		{Field: FieldMaritalStatus, Name: "marital_status", Postgres: "VARCHAR(16)", SQLite: "TEXT"},
		{Field: FieldEmergencyContactName, Name: "emergency_contact_name", Postgres: "VARCHAR(255)", SQLite: "TEXT"},
		{Field: FieldEmergencyContactPhone, Name: "emergency_contact_phone", Postgres: "VARCHAR(32)", SQLite: "TEXT"},
		{Field: FieldHireSource, Name: "hire_source", Postgres: "VARCHAR(32)", SQLite: "TEXT"},
		{Field: FieldEmploymentStatus, Name: "employment_status", Postgres: "VARCHAR(32)", SQLite: "TEXT"},
	},
}

// EmployeeEmailConstraint is the name PostgreSQL gives the email UNIQUE constraint.
const EmployeeEmailConstraint = "employees_email_key"
