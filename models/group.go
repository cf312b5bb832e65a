package models

import "time"

// Group phân vùng khách trong một event (store, department, state...).
type Group struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	EventID   string    `gorm:"column:event_id;size:36;not null;index" json:"event_id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Group) TableName() string {
	return "groups"
}
