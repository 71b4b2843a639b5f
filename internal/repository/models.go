package repository

import "time"

// Timestamps carries the server-maintained audit columns shared by every
// table. gorm refreshes UpdatedAt on any mutation.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Salt         string `gorm:"not null"` // random per user, never exposed
	PasswordHash string `gorm:"not null"` // derived from salt+plaintext, never exposed
	IsActive     bool   `gorm:"not null;default:true"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
	Timestamps
}

// Profile is a 1:1 extension of User holding display metadata. It is part of
// the persisted schema but untouched by the to-do logic.
type Profile struct {
	ID          uint    `gorm:"primaryKey"`
	FullName    *string `gorm:"type:text"`
	PhoneNumber *string `gorm:"type:text"`
	Bio         string  `gorm:"type:text;default:''"`
	Image       *string `gorm:"type:text"`
	UserID      uint    `gorm:"not null;uniqueIndex"`
	User        User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamps
}

type Todo struct {
	ID        uint   `gorm:"primaryKey"`
	Task      string `gorm:"type:text;not null"`
	Completed bool   `gorm:"not null"`
	Owner     uint   `gorm:"not null;index"`
	OwnerUser User   `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE"`
	Timestamps
}
