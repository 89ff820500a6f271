// property.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package forms

import (
	"strings"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
	"gorm.io/datatypes"
)

// fallbackImage is used for new properties submitted without a photo.
const fallbackImage = "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=400"

// PropertyInput is the add/edit property dialog. FloorUnits maps floor
// index to the unit count entered for that floor.
type PropertyInput struct {
	Name       string                      `json:"name"`
	Address    string                      `json:"address"`
	Floors     types.FlexUint64            `json:"floors"`
	FloorUnits map[string]types.FlexUint64 `json:"floorUnits"`
	Image      string                      `json:"image"`
}

// SetFloors changes the floor count and drops the per-floor unit counts,
// matching the dialog resetting those inputs when floors changes.
func (in *PropertyInput) SetFloors(floors uint64) {
	in.Floors = types.FlexUint64(floors)
	in.FloorUnits = nil
}

// TotalUnits sums the per-floor unit counts.
func (in PropertyInput) TotalUnits() int {
	total := 0
	for _, n := range in.FloorUnits {
		total += n.Int()
	}
	return total
}

// Validate reports every missing or malformed required field for the
// add dialog. The image is required and must be a data URL or a plain
// URL; the dialog refuses to submit without one.
func (in PropertyInput) Validate() error {
	e := in.validateCommon()
	if in.Image == "" {
		e.Add("image")
	}
	return e.OrNil()
}

// ValidateEdit reports every missing or malformed required field for the
// edit dialog. The edit draft is pre-filled with the current image, so an
// empty image means keep it.
func (in PropertyInput) ValidateEdit() error {
	return in.validateCommon().OrNil()
}

func (in PropertyInput) validateCommon() *types.ValidationError {
	e := &types.ValidationError{}
	if in.Name == "" {
		e.Add("name")
	}
	if in.Address == "" {
		e.Add("address")
	}
	if in.Floors == 0 {
		e.Add("floors")
	}
	if in.Image != "" && !validImage(in.Image) {
		e.Add("image")
	}
	return e
}

func validImage(s string) bool {
	return strings.HasPrefix(s, "data:image/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}

// Build creates a property record: one past the current count, zero
// occupancy, and an empty unit list.
func (in PropertyInput) Build(count int) models.Property {
	total := in.TotalUnits()
	image := in.Image
	if image == "" {
		image = fallbackImage
	}
	return models.Property{
		ID:         count + 1,
		Name:       in.Name,
		Address:    in.Address,
		Image:      image,
		Floors:     in.Floors.Int(),
		Units:      total,
		Occupied:   0,
		Tenants:    0,
		Vacant:     total,
		FloorUnits: in.floorUnitsJSON(),
		UnitsList:  datatypes.JSONSlice[models.Unit]{},
	}
}

// ApplyTo edits an existing property in place. Occupancy counters and the
// unit list are untouched; an empty image keeps the current one.
func (in PropertyInput) ApplyTo(p *models.Property) {
	p.Name = in.Name
	p.Address = in.Address
	if in.Image != "" {
		p.Image = in.Image
	}
	p.Floors = in.Floors.Int()
	if total := in.TotalUnits(); total > 0 {
		p.Units = total
	}
	if fu := in.floorUnitsJSON(); fu != nil {
		p.FloorUnits = fu
	}
}

func (in PropertyInput) floorUnitsJSON() datatypes.JSONMap {
	if len(in.FloorUnits) == 0 {
		return nil
	}
	m := datatypes.JSONMap{}
	for k, v := range in.FloorUnits {
		m[k] = v.Int()
	}
	return m
}
