package employee

import (
	"context"
	"encoding/json"
	"time"

	"paytrack/internal/events"
	"paytrack/internal/messaging/kafka"
	"paytrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	InitSchema(ctx context.Context) error
	ResetSchema(ctx context.Context) error
	GetSalary(ctx context.Context, name EmployeeName) (EmployeeSalary, error)
	InsertEmployee(ctx context.Context, data EmployeeData) error
	ApplyIncrease(ctx context.Context, m SalaryMultiplier) (EmployeeSalary, error)
}

type repository struct {
	db     *gorm.DB
	outbox kafka.OutboxRepository
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// NewRepositoryWithOutbox stages domain events in the same transaction
// as the state change they describe.
func NewRepositoryWithOutbox(db *gorm.DB, outbox kafka.OutboxRepository) Repository {
	return &repository{db: db, outbox: outbox}
}

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	salary BIGINT NOT NULL,
	CONSTRAINT uq_employees_name UNIQUE (name)
)`

// InitSchema is idempotent; it never fails because the table exists.
func (r *repository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(createEmployeesTable).Error
}

// ResetSchema additionally deletes all records. Test/setup paths only,
// never the serving path.
func (r *repository) ResetSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(createEmployeesTable).Error; err != nil {
			return err
		}
		return tx.Exec(`TRUNCATE TABLE employees`).Error
	})
}

// GetSalary looks up the salary by exact, case-sensitive name match.
func (r *repository) GetSalary(ctx context.Context, name EmployeeName) (EmployeeSalary, error) {
	var row struct{ Salary int64 }
	res := r.db.WithContext(ctx).
		Raw(`SELECT salary FROM employees WHERE name = ?`, name.String()).
		Scan(&row)
	if res.Error != nil {
		return EmployeeSalary{}, res.Error
	}
	if res.RowsAffected == 0 {
		return EmployeeSalary{}, gorm.ErrRecordNotFound
	}
	return UncheckedEmployeeSalary{Amount: row.Salary}.Check()
}

func (r *repository) InsertEmployee(ctx context.Context, data EmployeeData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			`INSERT INTO employees (name, salary) VALUES (?, ?)`,
			data.Name().String(), data.Salary().Amount(),
		).Error
		if err != nil {
			return err
		}

		if r.outbox == nil {
			return nil
		}
		return r.stageEvent(ctx, tx, data.Name().String(), events.EmployeeCreatedTopic, "employee_created",
			events.EmployeeCreatedEvent{
				EventType:    "employee_created",
				RequestID:    contextutil.GetRequestID(ctx),
				EmployeeName: data.Name().String(),
				Salary:       data.Salary().Amount(),
				OccurredAt:   time.Now().UTC(),
			})
	})
}

// ApplyIncrease runs the whole read-modify-write as one transaction and
// returns the pre-increase salary. The read takes a row lock so two
// concurrent increases on the same name serialize instead of both
// seeing the pre-increase value; increases on different names do not
// contend.
func (r *repository) ApplyIncrease(ctx context.Context, m SalaryMultiplier) (EmployeeSalary, error) {
	var oldSalary EmployeeSalary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct{ Salary int64 }
		res := tx.Raw(
			`SELECT salary FROM employees WHERE name = ? FOR UPDATE`,
			m.Name().String(),
		).Scan(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		current, err := UncheckedEmployeeSalary{Amount: row.Salary}.Check()
		if err != nil {
			return err
		}

		raised, previous, err := current.IncreaseByPercentage(m)
		if err != nil {
			return err
		}

		err = tx.Exec(
			`UPDATE employees SET salary = ? WHERE name = ?`,
			raised.Amount(), m.Name().String(),
		).Error
		if err != nil {
			return err
		}

		if r.outbox != nil {
			err = r.stageEvent(ctx, tx, m.Name().String(), events.SalaryIncreasedTopic, "salary_increased",
				events.SalaryIncreasedEvent{
					EventType:      "salary_increased",
					RequestID:      contextutil.GetRequestID(ctx),
					EmployeeName:   m.Name().String(),
					Percentage:     m.Percentage(),
					PreviousSalary: previous.Amount(),
					NewSalary:      raised.Amount(),
					OccurredAt:     time.Now().UTC(),
				})
			if err != nil {
				return err
			}
		}

		oldSalary = previous
		return nil
	})
	if err != nil {
		return EmployeeSalary{}, err
	}
	return oldSalary, nil
}

func (r *repository) stageEvent(ctx context.Context, tx *gorm.DB, name, topic, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   name,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
