package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Family struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"`
	CreatedBy uuid.UUID `json:"created_by"`

	Members []*FamilyMember `gorm:"foreignKey:FamilyID" json:"members,omitempty"`
	Timestamp
}

func (f *Family) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FamilyMember links a user to a family. The unique index on UserID is what
// enforces the one-family-per-user invariant under concurrent joins.
type FamilyMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FamilyID uuid.UUID `gorm:"not null" json:"family_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex;not null" json:"user_id"`
	Role     string    `gorm:"not null" json:"role"` // "admin" or "member"
	JoinedAt time.Time `gorm:"type:timestamp" json:"joined_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Family *Family `gorm:"foreignKey:FamilyID" json:"-"`
}

func (m *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
