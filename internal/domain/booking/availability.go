package booking

type AvailabilityInput struct {
	BusinessID     uint
	ProfessionalID uint
	ServiceID      uint
	Date           string // YYYY-MM-DD
}

type TimeSlot struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Price float64 `json:"price"`
}
