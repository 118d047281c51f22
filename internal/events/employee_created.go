package events

import "time"

const EmployeeCreatedTopic = "payroll.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeName string    `json:"employee_name"`
	Salary       int64     `json:"salary"`
	OccurredAt   time.Time `json:"occurred_at"`
}
