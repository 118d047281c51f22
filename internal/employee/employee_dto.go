package employee

type GetSalaryRequest struct {
	Name string `form:"name" binding:"required"`
}

type AddEmployeeRequest struct {
	Name   string `json:"name" binding:"required"`
	Salary int64  `json:"salary" binding:"required"`
}

type IncreaseSalaryRequest struct {
	Name       string `json:"name" binding:"required"`
	Percentage int64  `json:"percentage" binding:"required"`
}

type SalaryResponse struct {
	Name   string `json:"name"`
	Salary int64  `json:"salary"`
}

// IncreaseSalaryResponse reports the salary as it was immediately
// before the raise.
type IncreaseSalaryResponse struct {
	Name           string `json:"name"`
	PreviousSalary int64  `json:"previous_salary"`
}
