package models

import "time"

// Block remove capacidade do dia sem ser uma reserva: folga, almoço,
// fechamento manual.
type Block struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index" json:"business_id"`

	ProfessionalID uint `json:"professional_id"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
