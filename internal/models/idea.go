package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type IdeaStatus string

const (
	IdeaStatusDraft      IdeaStatus = "DRAFT"
	IdeaStatusOpen       IdeaStatus = "OPEN"
	IdeaStatusInProgress IdeaStatus = "IN_PROGRESS"
	IdeaStatusCompleted  IdeaStatus = "COMPLETED"
	IdeaStatusCancelled  IdeaStatus = "CANCELLED"
)

// Valid reports whether s is one of the known idea statuses.
func (s IdeaStatus) Valid() bool {
	switch s {
	case IdeaStatusDraft, IdeaStatusOpen, IdeaStatusInProgress, IdeaStatusCompleted, IdeaStatusCancelled:
		return true
	}
	return false
}

// TagList is stored as a single comma-joined text column.
type TagList []string

// Value implements driver.Valuer.
func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

// Scan implements sql.Scanner. Blank segments are dropped; order is preserved.
func (t *TagList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*t = TagList{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}

	tags := TagList{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	*t = tags
	return nil
}

type Idea struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null" json:"ownerId"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Tags        TagList    `gorm:"type:text" json:"tags"`
	Category    string     `gorm:"type:varchar(63)" json:"category"`
	Status      IdeaStatus `gorm:"type:varchar(63);not null;default:'DRAFT'" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
