package models

// Profile holds the subscriber's public card data and engagement counters.
// Counters only move forward; increments happen server-side in a single
// UPDATE so concurrent requests never lose an increment.
type Profile struct {
	BaseModel
	UserID    string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Name      string `gorm:"not null" json:"name"`
	Biography string `gorm:"default:''" json:"biography"`
	// Counters stay nullable: rows imported from the legacy platform may
	// carry NULL, which increments treat as 0.
	Views  int64 `gorm:"default:0" json:"views"`
	Shares int64 `gorm:"default:0" json:"shares"`
	Clicks int64 `gorm:"default:0" json:"clicks"`

	// Relations
	ClickStats []ProfileClickStat `gorm:"foreignKey:ProfileID" json:"-"`
}

// ProfileClickStat tallies clicks per link type ("whatsapp", "instagram", ...).
// The aggregate Profile.Clicks counter stays authoritative; these rows are
// a breakdown maintained by upsert.
type ProfileClickStat struct {
	BaseModel
	ProfileID string `gorm:"type:uuid;not null;uniqueIndex:idx_profile_click_type" json:"profileId"`
	ClickType string `gorm:"size:64;not null;uniqueIndex:idx_profile_click_type" json:"clickType"`
	Count     int64  `gorm:"not null;default:0" json:"count"`
}
