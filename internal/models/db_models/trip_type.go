package db_models

// TripType is a named trip category with a default packing checklist.
// The primary key is a stable slug ("beach", "city", "business") so the
// frontend can hardcode deep links to the seeded templates.
type TripType struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	Icon     string
	Color    string
	Position int

	// Items are owned exclusively by their trip type and ordered by
	// Position, which records insertion order.
	Items []PackingItem `gorm:"foreignKey:TripTypeID;constraint:OnDelete:CASCADE"`
}

// PackingItem is a single checklist entry. It never exists outside its
// owning trip type; mutations rewrite the whole item list as one unit.
type PackingItem struct {
	ID         string `gorm:"primaryKey"`
	TripTypeID string `gorm:"index"`
	Name       string
	Category   string `gorm:"default:custom"`
	Packed     bool
	Position   int
}
