package models

import "time"

type Business struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
	Phone       string `gorm:"size:20" json:"phone"`
	WhatsApp    string `gorm:"size:20" json:"whatsapp"`
	Address     string `gorm:"size:255" json:"address"`
	Category    string `gorm:"size:50" json:"category"`

	// Fuso IANA da empresa. Todo cálculo de data/slot acontece neste
	// fuso, nunca no do cliente.
	Timezone string `gorm:"size:50" json:"timezone"`

	Plan string `gorm:"size:20;default:'basic'" json:"plan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
