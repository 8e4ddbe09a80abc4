package models

import "time"

// WeeklyHours é a configuração recorrente: uma linha por dia da semana
// (0=domingo … 6=sábado). Quando IsOpen é falso, Slots é ignorado.
type WeeklyHours struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"uniqueIndex:idx_weekly_business_weekday" json:"business_id"`

	Weekday int `gorm:"uniqueIndex:idx_weekly_business_weekday" json:"weekday"`

	IsOpen bool     `json:"is_open"`
	Slots  SlotList `gorm:"type:jsonb" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
