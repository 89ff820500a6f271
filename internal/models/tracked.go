package models

import "time"

// Tracked records when a row was created. Lists render newest rows first,
// so every entity embeds it. Seeded rows are stamped backwards from boot
// time to keep their fixture order behind anything added at runtime.
type Tracked struct {
	CreatedAt time.Time `gorm:"index" json:"-"`
}

// SetCreatedAt overrides the creation stamp. Used when seeding.
func (t *Tracked) SetCreatedAt(at time.Time) {
	t.CreatedAt = at
}
