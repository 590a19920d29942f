package models

type Artwork struct {
	BaseModel
	ShopID      string  `gorm:"type:uuid;not null;index" json:"shop_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string  `json:"image_url"`

	Shop *Shop `gorm:"foreignKey:ShopID" json:"-"`
}
