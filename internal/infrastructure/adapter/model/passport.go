package model

// Passport is the GORM model for the passports table
type Passport struct {
	ID     int    `gorm:"primaryKey;autoIncrement"`
	Type   string `gorm:"type:varchar(50);not null"`
	Number string `gorm:"type:varchar(50);not null"`
}

// TableName specifies the table name for the Passport model
func (Passport) TableName() string {
	return "passports"
}
