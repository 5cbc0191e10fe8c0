package entity

import "time"

// ParentType is the kind of content a reaction is attached to.
type ParentType string

const (
	ParentTypeDiscussion ParentType = "discussion"
	ParentTypeComment    ParentType = "comment"
	ParentTypeActivity   ParentType = "activity"
)

func (t ParentType) Valid() bool {
	switch t {
	case ParentTypeDiscussion, ParentTypeComment, ParentTypeActivity:
		return true
	}
	return false
}

// Reaction records that a user applied one action to one piece of content.
// The unique index is the actual enforcement of one-reaction-per-user-per-content;
// the write path's read-then-decide branch is optimistic on top of it.
type Reaction struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActionID       int64      `gorm:"not null;index" json:"action_id"`
	ParentID       int64      `gorm:"not null;uniqueIndex:idx_reactions_unique,priority:1;index:idx_reactions_lookup,priority:1" json:"parent_id"`
	ParentType     ParentType `gorm:"size:20;not null;uniqueIndex:idx_reactions_unique,priority:2;index:idx_reactions_lookup,priority:2" json:"parent_type"`
	ParentAuthorID int64      `gorm:"not null;index" json:"parent_author_id"`
	InsertUserID   int64      `gorm:"not null;uniqueIndex:idx_reactions_unique,priority:3" json:"insert_user_id"`
	DateInserted   time.Time  `gorm:"not null" json:"date_inserted"`
}

func (r *Reaction) TableName() string {
	return "reactions"
}
