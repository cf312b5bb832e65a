package models

import "time"

type User struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Email     string    `gorm:"column:email;size:100;unique;not null" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"` // ẩn khi trả JSON
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Events []Event `gorm:"foreignKey:HostID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
