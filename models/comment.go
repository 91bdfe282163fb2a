package models

import (
	"time"

	"gorm.io/datatypes"
)

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentRejected:
		return true
	default:
		return false
	}
}

// Comment carries denormalized author name and avatar so lists render
// without a profile join. Rejected comments are hard-deleted, never stored.
type Comment struct {
	ID         string                      `gorm:"primaryKey" json:"id"`
	LessonID   string                      `gorm:"index;not null" json:"lessonId"`
	UserID     string                      `gorm:"index" json:"userId"`
	UserName   string                      `json:"userName"`
	UserAvatar string                      `json:"userAvatar"`
	Text       string                      `json:"text"`
	Timestamp  time.Time                   `json:"timestamp"`
	Status     CommentStatus               `gorm:"type:varchar(16)" json:"status"`
	Likes      int                         `json:"likes"`
	LikedBy    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"likedBy"`
}

func (Comment) TableName() string { return "comments" }

// VisibleTo implements the moderation visibility rule: privileged roles see
// everything, other viewers see approved comments and their own.
func (c Comment) VisibleTo(viewerID string, role Role) bool {
	if role.AtLeast(RoleModerator) {
		return true
	}
	return c.Status == CommentApproved || c.UserID == viewerID
}
