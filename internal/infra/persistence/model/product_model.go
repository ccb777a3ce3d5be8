package model

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          string  `gorm:"type:text;primaryKey"`
	Name        string  `gorm:"type:text;not null"`
	Price       float64 `gorm:"type:double precision;not null"`
	Description string  `gorm:"type:text;not null"`
	Image       string  `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
