package model

// Company is the GORM model for the companies table
type Company struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
