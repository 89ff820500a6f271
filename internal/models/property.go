package models

import (
	"strconv"

	"gorm.io/datatypes"
)

// Unit statuses.
const (
	UnitOccupied    = "occupied"
	UnitVacant      = "vacant"
	UnitMaintenance = "maintenance"
)

// Unit is one rentable unit inside a property. Units are created with the
// property's mock data and are not independently editable.
type Unit struct {
	ID     int    `json:"id"`
	Number string `json:"number"`
	Floor  int    `json:"floor"`
	Rent   int    `json:"rent"`
	Tenant string `json:"tenant,omitempty"`
	Status string `json:"status"`
}

// Property is the one entity with an edit flow: it is created by the
// property form and edited in place by id match.
type Property struct {
	Tracked

	ID       int    `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Address  string `gorm:"not null" json:"address"`
	Image    string `json:"image"`
	Floors   int    `json:"floors"`
	Units    int    `json:"units"`
	Occupied int    `json:"occupied"`
	Tenants  int    `json:"tenants"`
	Vacant   int    `json:"vacant"`

	// Per-floor unit counts collected by the form, keyed by floor index.
	FloorUnits datatypes.JSONMap `gorm:"type:json" json:"floorUnits,omitempty"`

	UnitsList datatypes.JSONSlice[Unit] `gorm:"type:json" json:"units_list"`
}

// RecordID implements store.Entity.
func (p Property) RecordID() string {
	return strconv.Itoa(p.ID)
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}

// OccupancyRate is the percentage shown on the property detail header,
// rounded the way the page rounded it.
func (p Property) OccupancyRate() int {
	if p.Units == 0 {
		return 0
	}
	return int(float64(p.Occupied)/float64(p.Units)*100 + 0.5)
}

// FloorsOf returns the distinct floors of the property's units, ascending.
func (p Property) FloorsOf() []int {
	seen := make(map[int]bool)
	var floors []int
	for _, u := range p.UnitsList {
		if !seen[u.Floor] {
			seen[u.Floor] = true
			floors = append(floors, u.Floor)
		}
	}
	for i := 1; i < len(floors); i++ {
		for j := i; j > 0 && floors[j] < floors[j-1]; j-- {
			floors[j], floors[j-1] = floors[j-1], floors[j]
		}
	}
	return floors
}
