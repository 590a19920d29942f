package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	Avatar       string   `json:"avatar,omitempty"`

	// Relations
	Shop *Shop `gorm:"foreignKey:UserID" json:"shop,omitempty"`
}
