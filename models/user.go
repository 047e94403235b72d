package models

import "time"

// User is a registered customer (postgres table "users"). The id is the
// subject of the user's token; carts and wishlists in the document store
// are keyed by it.
type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"unique;not null" json:"email"`
	Phone         string    `json:"phone"`
	Name          string    `json:"name"`
	Picture       string    `json:"picture"`
	Provider      string    `json:"provider"`
	PreferredLang string    `gorm:"type:VARCHAR(2);default:'ar'" json:"preferred_lang"`
	Address       Address   `gorm:"embedded" json:"address"`
	Orders        []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}
