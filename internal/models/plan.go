package models

import "gorm.io/datatypes"

// Plan is a catalog entry for a subscription tier. Plans are seeded
// externally; the application only reads them.
type Plan struct {
	BaseModel
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	// Pointer: gorm skips zero-value fields when the column carries a
	// default, so a plain bool could never persist false.
	IsActive *bool          `gorm:"not null;default:true" json:"isActive"`
	Features datatypes.JSON `json:"features"` // ordered JSON array of strings
}
