package employee_test

import (
	"context"
	"errors"
	"testing"

	"paytrack/internal/employee"
	employeeerrors "paytrack/internal/employee/errors"
	"paytrack/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	initSchemaFn     func(ctx context.Context) error
	resetSchemaFn    func(ctx context.Context) error
	getSalaryFn      func(ctx context.Context, name employee.EmployeeName) (employee.EmployeeSalary, error)
	insertEmployeeFn func(ctx context.Context, data employee.EmployeeData) error
	applyIncreaseFn  func(ctx context.Context, m employee.SalaryMultiplier) (employee.EmployeeSalary, error)

	insertCalls   int
	increaseCalls int
}

func (f *fakeEmployeeRepository) InitSchema(ctx context.Context) error {
	if f.initSchemaFn != nil {
		return f.initSchemaFn(ctx)
	}
	return nil
}

func (f *fakeEmployeeRepository) ResetSchema(ctx context.Context) error {
	if f.resetSchemaFn != nil {
		return f.resetSchemaFn(ctx)
	}
	return nil
}

func (f *fakeEmployeeRepository) GetSalary(ctx context.Context, name employee.EmployeeName) (employee.EmployeeSalary, error) {
	if f.getSalaryFn != nil {
		return f.getSalaryFn(ctx, name)
	}
	return employee.EmployeeSalary{}, nil
}

func (f *fakeEmployeeRepository) InsertEmployee(ctx context.Context, data employee.EmployeeData) error {
	f.insertCalls++
	if f.insertEmployeeFn != nil {
		return f.insertEmployeeFn(ctx, data)
	}
	return nil
}

func (f *fakeEmployeeRepository) ApplyIncrease(ctx context.Context, m employee.SalaryMultiplier) (employee.EmployeeSalary, error) {
	f.increaseCalls++
	if f.applyIncreaseFn != nil {
		return f.applyIncreaseFn(ctx, m)
	}
	return employee.EmployeeSalary{}, nil
}

func checkedSalary(t *testing.T, amount int64) employee.EmployeeSalary {
	t.Helper()
	salary, err := employee.UncheckedEmployeeSalary{Amount: amount}.Check()
	require.NoError(t, err)
	return salary
}

func TestEmployeeService_GetSalary(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			getSalaryFn: func(ctx context.Context, name employee.EmployeeName) (employee.EmployeeSalary, error) {
				assert.Equal(t, "Test Employee", name.String())
				return checkedSalary(t, 5000), nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.GetSalary(ctx, employee.GetSalaryRequest{Name: "Test Employee"})

		assert.NoError(t, err)
		assert.Equal(t, "Test Employee", resp.Name)
		assert.Equal(t, int64(5000), resp.Salary)
	})

	t.Run("invalid name skips the store", func(t *testing.T) {
		called := false
		repo := &fakeEmployeeRepository{
			getSalaryFn: func(ctx context.Context, name employee.EmployeeName) (employee.EmployeeSalary, error) {
				called = true
				return employee.EmployeeSalary{}, nil
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.GetSalary(ctx, employee.GetSalaryRequest{Name: "  "})

		assert.ErrorIs(t, err, employeeerrors.ErrEmptyEmployeeName)
		assert.False(t, called)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			getSalaryFn: func(ctx context.Context, name employee.EmployeeName) (employee.EmployeeSalary, error) {
				return employee.EmployeeSalary{}, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.GetSalary(ctx, employee.GetSalaryRequest{Name: "Nobody"})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assertCode(t, err, apperror.CodeNotFound)
	})

	t.Run("store unavailable", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			getSalaryFn: func(ctx context.Context, name employee.EmployeeName) (employee.EmployeeSalary, error) {
				return employee.EmployeeSalary{}, errors.New("dial tcp: connection refused")
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.GetSalary(ctx, employee.GetSalaryRequest{Name: "Test Employee"})

		assertCode(t, err, apperror.CodeServiceUnavailable)
	})
}

func TestEmployeeService_AddEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			insertEmployeeFn: func(ctx context.Context, data employee.EmployeeData) error {
				assert.Equal(t, "Test Employee", data.Name().String())
				assert.Equal(t, int64(5000), data.Salary().Amount())
				return nil
			},
		}
		svc := employee.NewService(repo)

		err := svc.AddEmployee(ctx, employee.AddEmployeeRequest{Name: "Test Employee", Salary: 5000})

		assert.NoError(t, err)
		assert.Equal(t, 1, repo.insertCalls)
	})

	t.Run("zero salary persists nothing", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		svc := employee.NewService(repo)

		err := svc.AddEmployee(ctx, employee.AddEmployeeRequest{Name: "Test Employee", Salary: 0})

		assert.ErrorIs(t, err, employeeerrors.ErrNonPositiveSalary)
		assert.Equal(t, 0, repo.insertCalls)
	})

	t.Run("whitespace name persists nothing", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		svc := employee.NewService(repo)

		err := svc.AddEmployee(ctx, employee.AddEmployeeRequest{Name: " \t ", Salary: 100})

		assert.ErrorIs(t, err, employeeerrors.ErrEmptyEmployeeName)
		assert.Equal(t, 0, repo.insertCalls)
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			insertEmployeeFn: func(ctx context.Context, data employee.EmployeeData) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_name"}
			},
		}
		svc := employee.NewService(repo)

		err := svc.AddEmployee(ctx, employee.AddEmployeeRequest{Name: "Test Employee", Salary: 5000})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assertCode(t, err, apperror.CodeConflict)
	})
}

func TestEmployeeService_IncreaseSalary(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns previous salary", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			applyIncreaseFn: func(ctx context.Context, m employee.SalaryMultiplier) (employee.EmployeeSalary, error) {
				assert.Equal(t, "Test Employee", m.Name().String())
				assert.Equal(t, int64(25), m.Percentage())
				return checkedSalary(t, 100), nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.IncreaseSalary(ctx, employee.IncreaseSalaryRequest{Name: "Test Employee", Percentage: 25})

		assert.NoError(t, err)
		assert.Equal(t, "Test Employee", resp.Name)
		assert.Equal(t, int64(100), resp.PreviousSalary)
	})

	t.Run("invalid percentage skips the store", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		svc := employee.NewService(repo)

		_, err := svc.IncreaseSalary(ctx, employee.IncreaseSalaryRequest{Name: "Test Employee", Percentage: 0})

		assert.ErrorIs(t, err, employeeerrors.ErrNonPositivePercentage)
		assert.Equal(t, 0, repo.increaseCalls)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			applyIncreaseFn: func(ctx context.Context, m employee.SalaryMultiplier) (employee.EmployeeSalary, error) {
				return employee.EmployeeSalary{}, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.IncreaseSalary(ctx, employee.IncreaseSalaryRequest{Name: "Nobody", Percentage: 25})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("overflow passes through untouched", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			applyIncreaseFn: func(ctx context.Context, m employee.SalaryMultiplier) (employee.EmployeeSalary, error) {
				return employee.EmployeeSalary{}, employeeerrors.ErrSalaryOverflow
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.IncreaseSalary(ctx, employee.IncreaseSalaryRequest{Name: "Test Employee", Percentage: 100})

		assert.ErrorIs(t, err, employeeerrors.ErrSalaryOverflow)
		assertCode(t, err, apperror.CodeOverflow)
	})

	t.Run("store unavailable", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			applyIncreaseFn: func(ctx context.Context, m employee.SalaryMultiplier) (employee.EmployeeSalary, error) {
				return employee.EmployeeSalary{}, errors.New("write: broken pipe")
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.IncreaseSalary(ctx, employee.IncreaseSalaryRequest{Name: "Test Employee", Percentage: 25})

		assertCode(t, err, apperror.CodeServiceUnavailable)
	})
}
