package models

import "time"

// Award là một hạng mục bầu chọn trong event.
type Award struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	EventID     string    `gorm:"column:event_id;size:36;not null;index" json:"event_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Event Event  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Votes []Vote `gorm:"foreignKey:AwardID" json:"-"`
}

func (Award) TableName() string {
	return "awards"
}
