package models

import "time"

type Event struct {
	ID                string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title             string    `gorm:"column:title;size:255;not null" json:"title"`
	Description       string    `gorm:"column:description;type:text" json:"description"`
	EventType         string    `gorm:"column:event_type;size:20;not null" json:"event_type"` // business | personal
	MultiStoreEnabled bool      `gorm:"column:multi_store_enabled;default:false" json:"multi_store_enabled"`
	EventDate         time.Time `gorm:"column:event_date;type:date;not null" json:"event_date"`
	TemplateTheme     string    `gorm:"column:template_theme;size:20;default:'light'" json:"template_theme"` // light | dark | love
	LogoURL           *string   `gorm:"column:logo_url;type:text" json:"logo_url"`
	// Phạm vi bầu chọn giải thưởng: all (mọi khách) | department (trong nhóm).
	// Chỉ có ý nghĩa khi MultiStoreEnabled = true.
	AwardVotingScope string    `gorm:"column:award_voting_scope;size:20;default:'all'" json:"award_voting_scope"`
	HostID           string    `gorm:"column:host_id;size:36;not null;index" json:"host_id"`
	HostName         string    `gorm:"column:host_name;size:100" json:"host_name"`
	HostEmail        string    `gorm:"column:host_email;size:100" json:"host_email"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Host *User `gorm:"foreignKey:HostID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Quan hệ — xoá event sẽ cascade toàn bộ
	Groups []Group `gorm:"foreignKey:EventID" json:"-"`
	Guests []Guest `gorm:"foreignKey:EventID" json:"-"`
	Awards []Award `gorm:"foreignKey:EventID" json:"-"`
	Votes  []Vote  `gorm:"foreignKey:EventID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}
