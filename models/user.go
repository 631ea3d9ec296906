package models

import (
	"time"
)

// User owns tasks. Until authentication lands, a single seeded placeholder
// row stands in for every caller.
type User struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username  string    `gorm:"type:text" json:"username"`
	Email     string    `gorm:"type:text" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Tasks     []Task    `json:"-"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
