package models

// Photo phases: one photo set per side of the tenancy.
const (
	PhaseMoveIn  = "move-in"
	PhaseMoveOut = "move-out"
)

// PhotoCategories are the documentable areas of a unit, in display order.
var PhotoCategories = []string{
	"Living Room", "Bedroom 1", "Bedroom 2", "Kitchen",
	"Bathroom 1", "Bathroom 2", "Dining Room", "Balcony",
}

// MovePhoto is a condition photo uploaded during move-in or move-out.
// Identifiers are composite "<timestamp>-<index>" strings assigned per
// upload batch.
type MovePhoto struct {
	Tracked

	ID           string `gorm:"primaryKey" json:"id"`
	Phase        string `gorm:"size:16;not null" json:"phase"`
	Category     string `gorm:"size:64;not null" json:"category"`
	ImageURL     string `gorm:"not null" json:"imageUrl"`
	UploadedDate string `gorm:"size:32" json:"uploadedDate"`
}

// RecordID implements store.Entity.
func (p MovePhoto) RecordID() string {
	return p.ID
}

// TableName overrides the table name for MovePhoto
func (MovePhoto) TableName() string {
	return "move_photos"
}

// ValidPhotoCategory reports whether category is one of the documentable
// areas.
func ValidPhotoCategory(category string) bool {
	for _, c := range PhotoCategories {
		if c == category {
			return true
		}
	}
	return false
}
