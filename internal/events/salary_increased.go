package events

import "time"

const SalaryIncreasedTopic = "payroll.salary.lifecycle.v1"

type SalaryIncreasedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeName   string    `json:"employee_name"`
	Percentage     int64     `json:"percentage"`
	PreviousSalary int64     `json:"previous_salary"`
	NewSalary      int64     `json:"new_salary"`
	OccurredAt     time.Time `json:"occurred_at"`
}
