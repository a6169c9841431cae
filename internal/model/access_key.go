package model

import (
	"time"
)

// AccessKey is a shared-secret string granting standard or admin access.
// Keys are distributed out-of-band; there is no per-user account behind them.
type AccessKey struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"size:64;uniqueIndex;not null" json:"key"`
	OwnerName string    `gorm:"size:100" json:"owner_name"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (AccessKey) TableName() string {
	return "access_keys"
}
