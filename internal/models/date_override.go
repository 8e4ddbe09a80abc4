package models

import "time"

// DateOverride é a exceção de uma data específica. No máximo uma por
// (empresa, data): a chave composta dá semântica de upsert, nunca de
// insert duplicado. A ausência de exceção significa "use a semanal".
type DateOverride struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"uniqueIndex:idx_override_business_date" json:"business_id"`

	// Date no formato YYYY-MM-DD, no calendário da empresa.
	Date string `gorm:"size:10;uniqueIndex:idx_override_business_date" json:"date"`

	IsOpen bool     `json:"is_open"`
	Slots  SlotList `gorm:"type:jsonb" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
