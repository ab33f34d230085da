package comment

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("comment not found")
)

// Comment belongs to exactly one deal and is removed with it. No
// nesting/threading.
type Comment struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	DealID    string    `gorm:"column:deal_id;type:varchar(36);not null;index:idx_comments_deal_id" json:"dealId"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Comment) TableName() string { return "comments" }
