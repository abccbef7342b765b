package model

import "time"

type User struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;size:80;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"column:email;size:120;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (m *User) TableName() string {
	return "users"
}
