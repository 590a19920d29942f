package models

// Shop is the storefront of an artist. One per user, created automatically
// on artist registration and invisible to the public until an admin
// flips IsApproved.
type Shop struct {
	BaseModel
	UserID     string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name       string `gorm:"not null" json:"name"`
	Bio        string `json:"bio"`
	IsApproved bool   `gorm:"default:false" json:"is_approved"`

	Owner    *User     `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Artworks []Artwork `gorm:"foreignKey:ShopID" json:"artworks,omitempty"`
}
