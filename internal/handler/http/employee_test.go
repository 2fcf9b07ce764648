package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/cmlabs-hris/employee-service/internal/pkg/database"
	"github.com/cmlabs-hris/employee-service/internal/repository/sqlite"
	employeeService "github.com/cmlabs-hris/employee-service/internal/service/employee"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string            `json:"code"`
		Message   string            `json:"message"`
		Details   map[string]string `json:"details"`
		RequestID string            `json:"request_id"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))

	svc := employeeService.NewEmployeeService(sqlite.NewSqliteEmployeeRepo(db), nil)
	return NewRouter(RouterOptions{AllowedOrigins: []string{"http://localhost:3000"}}, NewEmployeeHandler(svc))
}

func employeeBody(email string) map[string]any {
	return map[string]any{
		"first_name":              "Durga Mahesh",
		"last_name":               "Kasala",
		"email":                   email,
		"phone_number":            "+917842630339",
		"gender":                  "MALE",
		"date_of_birth":           "2002-02-07",
		"hire_date":               "2024-07-01",
		"job_title":               "Software Engineer",
		"department":              "Engineering",
		"salary":                  "50000.00",
		"address":                 "123 Main St",
		"city":                    "Bangalore",
		"state":                   "Karnataka",
		"postal_code":             "560001",
		"country":                 "India",
		"marital_status":          "SINGLE",
		"emergency_contact_name":  "Venkata",
		"emergency_contact_phone": "+919876543210",
		"hire_source":             "REFERRAL",
		"employment_status":       "FULL_TIME",
	}
}

func do(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func decodeEmployee(t *testing.T, env envelope) employee.EmployeeResponse {
	t.Helper()
	var e employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &e))
	return e
}

func TestEmployeeHandler_Create(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("ramesh@gmail.com"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Employee created successfully", env.Message)
	created := decodeEmployee(t, env)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "ramesh@gmail.com", created.Email)
	assert.Equal(t, "2024-07-01", created.HireDate)
}

func TestEmployeeHandler_Create_IgnoresClientID(t *testing.T) {
	router := newTestRouter(t)

	body := employeeBody("ramesh@gmail.com")
	body["id"] = 500
	rec, env := do(t, router, http.MethodPost, "/api/v1/employees", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), decodeEmployee(t, env).ID)
}

func TestEmployeeHandler_Create_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("ramesh@gmail.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("RAMESH@gmail.com"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
	assert.NotEmpty(t, env.Error.RequestID)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), env.Error.RequestID)

	_, list := do(t, router, http.MethodGet, "/api/v1/employees", nil)
	var all []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(list.Data, &all))
	assert.Len(t, all, 1)
}

func TestEmployeeHandler_Create_Invalid(t *testing.T) {
	router := newTestRouter(t)

	t.Run("malformed json", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, "/api/v1/employees", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BAD_REQUEST", env.Error.Code)
	})

	t.Run("validation", func(t *testing.T) {
		body := employeeBody("not-an-email")
		delete(body, "salary")
		rec, env := do(t, router, http.MethodPost, "/api/v1/employees", body)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email")
		assert.Contains(t, env.Error.Details, "salary")
	})
}

func TestEmployeeHandler_PaddedDates(t *testing.T) {
	router := newTestRouter(t)

	body := employeeBody("a@x.com")
	body["date_of_birth"] = " 2002-02-07 "
	rec, env := do(t, router, http.MethodPost, "/api/v1/employees", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2002-02-07", decodeEmployee(t, env).DateOfBirth)

	rec, env = do(t, router, http.MethodPut, "/api/v1/employees/1", map[string]any{"hire_date": " 2025-01-01"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-01-01", decodeEmployee(t, env).HireDate)

	_, env = do(t, router, http.MethodGet, "/api/v1/employees/1", nil)
	stored := decodeEmployee(t, env)
	assert.Equal(t, "2002-02-07", stored.DateOfBirth)
	assert.Equal(t, "2025-01-01", stored.HireDate)
}

func TestEmployeeHandler_List(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/v1/employees", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(env.Data))

	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("a@x.com"))
	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("b@x.com"))

	_, env = do(t, router, http.MethodGet, "/api/v1/employees", nil)
	var all []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 2)
	assert.Equal(t, "a@x.com", all[0].Email)
	assert.Equal(t, "b@x.com", all[1].Email)
}

func TestEmployeeHandler_Get(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("a@x.com"))

	rec, env := do(t, router, http.MethodGet, "/api/v1/employees/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", decodeEmployee(t, env).Email)

	rec, env = do(t, router, http.MethodGet, "/api/v1/employees/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	for _, bad := range []string{"abc", "0", "-3"} {
		rec, _ = do(t, router, http.MethodGet, "/api/v1/employees/"+bad, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}

func TestEmployeeHandler_Update(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("a@x.com"))

	rec, env := do(t, router, http.MethodPut, "/api/v1/employees/1", map[string]any{
		"first_name": "Ram",
		"email":      "ram@gmail.com",
		"salary":     65000.5,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeEmployee(t, env)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Ram", updated.FirstName)
	assert.Equal(t, "ram@gmail.com", updated.Email)
	assert.Equal(t, "Kasala", updated.LastName)
	assert.Equal(t, "65000.5", updated.Salary.String())
}

func TestEmployeeHandler_Update_Errors(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("a@x.com"))
	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("b@x.com"))

	t.Run("unknown id", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPut, "/api/v1/employees/99", map[string]any{"city": "Pune"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("email taken by another employee", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPut, "/api/v1/employees/2", map[string]any{"email": "a@x.com"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("hire date before stored birth date", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPut, "/api/v1/employees/1", map[string]any{"hire_date": "1990-01-01"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, env.Error.Details, "hire_date")
	})

	t.Run("bad id", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPut, "/api/v1/employees/x", map[string]any{"city": "Pune"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("a@x.com"))

	rec, env := do(t, router, http.MethodDelete, "/api/v1/employees/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Employee deleted successfully", env.Message)

	// Idempotent.
	rec, _ = do(t, router, http.MethodDelete, "/api/v1/employees/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, router, http.MethodGet, "/api/v1/employees/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeHandler_Lookup(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/api/v1/employees", employeeBody("a@x.com"))

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"by email", "?email=A@x.com", http.StatusOK},
		{"by name", "?first_name=Durga%20Mahesh&last_name=Kasala", http.StatusOK},
		{"by padded name", "?first_name=%20Durga%20Mahesh%20&last_name=Kasala%20", http.StatusOK},
		{"unknown email", "?email=nobody@x.com", http.StatusNotFound},
		{"unknown name", "?first_name=Nobody&last_name=Kasala", http.StatusNotFound},
		{"no criteria", "", http.StatusBadRequest},
		{"last name missing", "?first_name=Durga", http.StatusBadRequest},
		{"both modes", "?email=a@x.com&first_name=Durga&last_name=Kasala", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, router, http.MethodGet, "/api/v1/employees/lookup"+tt.query, nil)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, int64(1), decodeEmployee(t, env).ID)
			}
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

type failingService struct {
	employee.EmployeeService
}

func (failingService) ListEmployees(context.Context) ([]employee.Employee, error) {
	return nil, errors.New("database is on fire")
}

func TestEmployeeHandler_UnexpectedError(t *testing.T) {
	router := NewRouter(RouterOptions{}, NewEmployeeHandler(failingService{}))

	rec, env := do(t, router, http.MethodGet, "/api/v1/employees", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "An unexpected error occurred", env.Error.Message)
	assert.NotContains(t, rec.Body.String(), "on fire")
}
