package employee

import (
	employeeerrors "paytrack/internal/employee/errors"
)

// IncreaseByPercentage computes the raised salary without touching storage.
// The step order is fixed: multiply, +100, -1, truncating division, add.
// It reproduces new = current + floor((current*percentage + 99) / 100),
// the round-up integer percentage, and must not be reordered.
// Both the new and the previous salary are returned so callers can report
// the old value without a second read.
func (s EmployeeSalary) IncreaseByPercentage(m SalaryMultiplier) (EmployeeSalary, EmployeeSalary, error) {
	addition, ok := mulInt64(s.amount, m.Percentage())
	if !ok {
		return EmployeeSalary{}, EmployeeSalary{}, employeeerrors.ErrSalaryOverflow
	}
	addition, ok = addInt64(addition, 100)
	if !ok {
		return EmployeeSalary{}, EmployeeSalary{}, employeeerrors.ErrSalaryOverflow
	}
	addition, ok = subInt64(addition, 1)
	if !ok {
		return EmployeeSalary{}, EmployeeSalary{}, employeeerrors.ErrSalaryUnderflow
	}
	addition /= 100

	amount, ok := addInt64(s.amount, addition)
	if !ok {
		return EmployeeSalary{}, EmployeeSalary{}, employeeerrors.ErrSalaryOverflow
	}

	raised, err := UncheckedEmployeeSalary{Amount: amount}.Check()
	if err != nil {
		return EmployeeSalary{}, EmployeeSalary{}, employeeerrors.ErrInvalidSalaryResult
	}
	return raised, s, nil
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}
