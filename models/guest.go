package models

import "time"

type Guest struct {
	ID        string `gorm:"column:id;primaryKey;size:36" json:"id"`
	EventID   string `gorm:"column:event_id;size:36;not null;uniqueIndex:uix_guests_event_guest_id" json:"event_id"`
	FirstName string `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100" json:"last_name"`
	Email     string `gorm:"column:email;size:100" json:"email"`
	// GuestID là mã khách dùng cho link RSVP tự phục vụ.
	// Unique theo (event_id, guest_id), không unique toàn cục.
	GuestID    string     `gorm:"column:guest_id;size:50;uniqueIndex:uix_guests_event_guest_id" json:"guest_id"`
	GroupID    *string    `gorm:"column:group_id;size:36" json:"group_id"`
	RSVPStatus string     `gorm:"column:rsvp_status;size:10;default:'pending'" json:"rsvp_status"` // pending | confirmed | declined
	RSVPDate   *time.Time `gorm:"column:rsvp_date" json:"rsvp_date"`

	Event Event  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Group *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Guest) TableName() string {
	return "guests"
}
