package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// Version is bumped on every successful update and compared on write.
	Version uint `gorm:"not null;default:0" json:"version"`
}

// Record is satisfied by every entity embedding DTO.
type Record interface {
	GetID() uint
	GetVersion() uint
	SetVersion(v uint)
}

func (d *DTO) GetID() uint       { return d.ID }
func (d *DTO) GetVersion() uint  { return d.Version }
func (d *DTO) SetVersion(v uint) { d.Version = v }

type TokenData struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

type TokenClaim struct {
	AccountId uint   `json:"accountId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}
