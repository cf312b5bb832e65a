package models

import "time"

// Vote: mỗi voter chỉ có đúng một phiếu cho một award trong một event.
// Ràng buộc unique (event_id, award_id, voter_id) để upsert atomic.
type Vote struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	EventID   string    `gorm:"column:event_id;size:36;not null;uniqueIndex:uix_votes_award_voter" json:"event_id"`
	AwardID   string    `gorm:"column:award_id;size:36;not null;uniqueIndex:uix_votes_award_voter" json:"award_id"`
	VoterID   string    `gorm:"column:voter_id;size:36;not null;uniqueIndex:uix_votes_award_voter" json:"voter_id"`
	NomineeID string    `gorm:"column:nominee_id;size:36;not null" json:"nominee_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Event   Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Award   Award `gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE" json:"-"`
	Voter   Guest `gorm:"foreignKey:VoterID;constraint:OnDelete:CASCADE" json:"-"`
	Nominee Guest `gorm:"foreignKey:NomineeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Vote) TableName() string {
	return "votes"
}
