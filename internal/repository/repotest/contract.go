// Package repotest holds the behavioural tests every EmployeeRepository
// implementation must pass.
package repotest

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/cmlabs-hris/employee-service/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty repository. It is called once per subtest.
type Factory func(t *testing.T) employee.EmployeeRepository

// RunEmployeeRepository runs the contract against repositories from newRepo.
func RunEmployeeRepository(t *testing.T, newRepo Factory) {
	t.Run("Create assigns id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Create(ctx, fixtures.DurgaMahesh())

		require.NoError(t, err)
		assert.Greater(t, saved.ID, int64(0))
		AssertSameFields(t, fixtures.DurgaMahesh(), saved)
	})

	t.Run("Create ignores client id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Create(ctx, fixtures.WithID(fixtures.DurgaMahesh(), 999))

		require.NoError(t, err)
		assert.NotEqual(t, int64(999), saved.ID)
	})

	t.Run("Create rejects duplicate email", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)

		_, err = repo.Create(ctx, fixtures.WithEmail(fixtures.ArjunNarayan(), fixtures.DurgaMahesh().Email))
		assert.ErrorIs(t, err, employee.ErrEmailExists)
		assert.ErrorIs(t, err, employee.ErrDuplicateResource)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("List", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		empty, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		_, err = repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)
		_, err = repo.Create(ctx, fixtures.ArjunNarayan())
		require.NoError(t, err)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("GetByID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)

		found, ok, err := repo.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, saved.ID, found.ID)
		AssertSameFields(t, saved, found)

		_, ok, err = repo.GetByID(ctx, saved.ID+100)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)

		found, ok, err := repo.GetByEmail(ctx, saved.Email)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, saved.ID, found.ID)

		_, ok, err = repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Update", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)

		changed := saved
		changed.Email = "ram@gmail.com"
		changed.FirstName = "Ram"
		changed.Salary = decimal.RequireFromString("65000.50")

		updated, err := repo.Update(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, updated.ID)
		assert.Equal(t, "ram@gmail.com", updated.Email)
		assert.Equal(t, "Ram", updated.FirstName)
		assert.True(t, changed.Salary.Equal(updated.Salary))

		found, ok, err := repo.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, ok)
		AssertSameFields(t, changed, found)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Update inserts unknown id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		upserted, err := repo.Update(ctx, fixtures.WithID(fixtures.ArjunNarayan(), 42))
		require.NoError(t, err)
		assert.Equal(t, int64(42), upserted.ID)

		_, ok, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Update onto another employee's email", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)
		second, err := repo.Create(ctx, fixtures.ArjunNarayan())
		require.NoError(t, err)

		_, err = repo.Update(ctx, fixtures.WithEmail(second, first.Email))
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, saved.ID))

		_, ok, err := repo.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting again, or an id that never existed, is a no-op.
		assert.NoError(t, repo.Delete(ctx, saved.ID))
		assert.NoError(t, repo.Delete(ctx, 12345))
	})

	t.Run("Delete unknown id leaves store unchanged", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, 12345))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("name lookups agree", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		durga, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)
		_, err = repo.Create(ctx, fixtures.ArjunNarayan())
		require.NoError(t, err)

		lookups := map[string]func(context.Context, string, string) (employee.Employee, bool, error){
			"FindByName":            repo.FindByName,
			"FindByNameNamed":       repo.FindByNameNamed,
			"FindByNameNative":      repo.FindByNameNative,
			"FindByNameNativeNamed": repo.FindByNameNativeNamed,
		}
		for name, lookup := range lookups {
			found, ok, err := lookup(ctx, durga.FirstName, durga.LastName)
			require.NoError(t, err, name)
			require.True(t, ok, name)
			assert.Equal(t, durga.ID, found.ID, name)
			AssertSameFields(t, durga, found)

			_, ok, err = lookup(ctx, durga.FirstName, "Nobody")
			assert.NoError(t, err, name)
			assert.False(t, ok, name)
		}
	})

	t.Run("name lookups pick lowest id on ties", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Create(ctx, fixtures.DurgaMahesh())
		require.NoError(t, err)
		_, err = repo.Create(ctx, fixtures.WithEmail(fixtures.DurgaMahesh(), "durga.second@example.com"))
		require.NoError(t, err)

		for _, lookup := range []func(context.Context, string, string) (employee.Employee, bool, error){
			repo.FindByName, repo.FindByNameNamed, repo.FindByNameNative, repo.FindByNameNativeNamed,
		} {
			found, ok, err := lookup(ctx, first.FirstName, first.LastName)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, first.ID, found.ID)
		}
	})
}

// AssertSameFields compares every field except ID. Dates are compared by
// calendar day and salaries by value, since storage may change their
// representation.
func AssertSameFields(t *testing.T, want, got employee.Employee) {
	t.Helper()

	assert.Equal(t, want.FirstName, got.FirstName)
	assert.Equal(t, want.LastName, got.LastName)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, want.Gender, got.Gender)
	assert.Equal(t, want.DateOfBirth.Format("2006-01-02"), got.DateOfBirth.Format("2006-01-02"))
	assert.Equal(t, want.HireDate.Format("2006-01-02"), got.HireDate.Format("2006-01-02"))
	assert.Equal(t, want.JobTitle, got.JobTitle)
	assert.Equal(t, want.Department, got.Department)
	assert.True(t, want.Salary.Equal(got.Salary), "salary: want %s, got %s", want.Salary, got.Salary)
	assert.Equal(t, want.Address, got.Address)
	assert.Equal(t, want.City, got.City)
	assert.Equal(t, want.State, got.State)
	assert.Equal(t, want.PostalCode, got.PostalCode)
	assert.Equal(t, want.Country, got.Country)
	assert.Equal(t, want.MaritalStatus, got.MaritalStatus)
	assert.Equal(t, want.EmergencyContactName, got.EmergencyContactName)
	assert.Equal(t, want.EmergencyContactPhone, got.EmergencyContactPhone)
	assert.Equal(t, want.HireSource, got.HireSource)
	assert.Equal(t, want.EmploymentStatus, got.EmploymentStatus)
}
