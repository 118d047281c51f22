package employee

// Employee is the persisted record, one row per unique name.
// The salary column is only ever rewritten by the increase transaction.
type Employee struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"type:text;not null;uniqueIndex:uq_employees_name"`
	Salary int64  `gorm:"not null"`
}

func (Employee) TableName() string {
	return "employees"
}
