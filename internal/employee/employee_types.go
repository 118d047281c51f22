package employee

import (
	"strings"

	employeeerrors "paytrack/internal/employee/errors"
)

// Raw inputs arrive as Unchecked* values; Check is the only way to turn
// them into the checked forms the rest of the package operates on.
// Checked values are read-only: fields are unexported and change only by
// replacement.

type UncheckedEmployeeName struct {
	Name string
}

// Check rejects names that are empty after trimming whitespace.
func (u UncheckedEmployeeName) Check() (EmployeeName, error) {
	if strings.TrimSpace(u.Name) == "" {
		return EmployeeName{}, employeeerrors.ErrEmptyEmployeeName
	}
	return EmployeeName{name: u.Name}, nil
}

type EmployeeName struct {
	name string
}

func (n EmployeeName) String() string {
	return n.name
}

type UncheckedEmployeeSalary struct {
	Amount int64
}

// Check rejects amounts that are zero or negative.
func (u UncheckedEmployeeSalary) Check() (EmployeeSalary, error) {
	if u.Amount <= 0 {
		return EmployeeSalary{}, employeeerrors.ErrNonPositiveSalary
	}
	return EmployeeSalary{amount: u.Amount}, nil
}

type EmployeeSalary struct {
	amount int64
}

func (s EmployeeSalary) Amount() int64 {
	return s.amount
}

type UncheckedEmployeeData struct {
	Name   string
	Salary int64
}

// Check validates name first, salary second, reporting the first
// violated condition.
func (u UncheckedEmployeeData) Check() (EmployeeData, error) {
	name, err := UncheckedEmployeeName{Name: u.Name}.Check()
	if err != nil {
		return EmployeeData{}, err
	}
	salary, err := UncheckedEmployeeSalary{Amount: u.Salary}.Check()
	if err != nil {
		return EmployeeData{}, err
	}
	return EmployeeData{name: name, salary: salary}, nil
}

type EmployeeData struct {
	name   EmployeeName
	salary EmployeeSalary
}

func (d EmployeeData) Name() EmployeeName {
	return d.name
}

func (d EmployeeData) Salary() EmployeeSalary {
	return d.salary
}

type UncheckedSalaryMultiplier struct {
	Name       string
	Percentage int64
}

// Check validates the target name and requires a strictly positive
// percentage. No upper bound is enforced.
func (u UncheckedSalaryMultiplier) Check() (SalaryMultiplier, error) {
	name, err := UncheckedEmployeeName{Name: u.Name}.Check()
	if err != nil {
		return SalaryMultiplier{}, err
	}
	if u.Percentage <= 0 {
		return SalaryMultiplier{}, employeeerrors.ErrNonPositivePercentage
	}
	return SalaryMultiplier{name: name, percentage: u.Percentage}, nil
}

// SalaryMultiplier is a validated "raise this employee by this percent".
type SalaryMultiplier struct {
	name       EmployeeName
	percentage int64
}

func (m SalaryMultiplier) Name() EmployeeName {
	return m.name
}

func (m SalaryMultiplier) Percentage() int64 {
	return m.percentage
}
