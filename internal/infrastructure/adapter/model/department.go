package model

// Department is the GORM model for the departments table
type Department struct {
	ID        int     `gorm:"primaryKey;autoIncrement"`
	CompanyID int     `gorm:"not null;index"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Phone     string  `gorm:"type:varchar(50);not null"`
	Company   Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Department model
func (Department) TableName() string {
	return "departments"
}
