package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Stores    []Store   `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
