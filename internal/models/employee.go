package models

// Employee is a farm staff account. The image field holds the stored avatar
// filename, served from the /avatar static mount.
type Employee struct {
	EmployeeID    string `json:"employee_id" gorm:"primaryKey;column:employee_id;type:varchar(36)"`
	EmployeeFname string `json:"employee_fname" gorm:"column:employee_fname;type:varchar(100)" validate:"required,min=1,max=100"`
	EmployeeLname string `json:"employee_lname" gorm:"column:employee_lname;type:varchar(100)" validate:"required,min=1,max=100"`
	Username      string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password      string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	EmployeeImage string `json:"employee_image" gorm:"column:employee_image;type:varchar(255)"`
}

func (Employee) TableName() string {
	return "employees"
}
