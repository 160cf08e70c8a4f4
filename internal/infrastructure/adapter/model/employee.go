package model

// Employee is the GORM model for the employees table
type Employee struct {
	ID           int        `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Surname      string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(50);not null"`
	CompanyID    int        `gorm:"not null;index"`
	DepartmentID int        `gorm:"not null;index"`
	PassportID   int        `gorm:"not null"`
	Company      Company    `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Department   Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Passport     Passport   `gorm:"foreignKey:PassportID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
