package models

// Order links a customer to an artist, optionally referencing one of the
// artist's artworks. Orders are never deleted; only Status and QRCodePath
// change after creation.
type Order struct {
	BaseModel
	CustomerID string      `gorm:"type:uuid;not null;index" json:"customer_id"`
	ArtistID   string      `gorm:"type:uuid;not null;index" json:"artist_id"`
	ArtworkID  *string     `gorm:"type:uuid" json:"artwork_id,omitempty"`
	Detail     string      `gorm:"not null" json:"detail"`
	Price      float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'waiting'" json:"status"`
	// Public path of the generated payment QR image; nil when generation
	// failed or no merchant id is configured.
	QRCodePath *string `json:"qr_code_path,omitempty"`

	Customer *User    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Artist   *User    `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Artwork  *Artwork `gorm:"foreignKey:ArtworkID" json:"artwork,omitempty"`
}
