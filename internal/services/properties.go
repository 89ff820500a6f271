// properties.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package services

import (
	"strconv"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/filter"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// PropertyService backs the owner's properties page: the card grid, the
// add/edit dialog, and the per-property unit detail.
type PropertyService struct {
	stores *Stores
}

// NewPropertyService creates a PropertyService over the shared stores.
func NewPropertyService(s *Stores) *PropertyService {
	return &PropertyService{stores: s}
}

// List returns properties matching the search query by name or address.
func (s *PropertyService) List(q string) ([]models.Property, error) {
	rows, err := s.stores.Properties.List()
	if err != nil {
		return nil, err
	}
	return filter.Apply(rows, func(p models.Property) bool {
		return filter.MatchText(q, p.Name, p.Address)
	}), nil
}

// Create validates the dialog input and adds a new property.
func (s *PropertyService) Create(in forms.PropertyInput) (models.Property, error) {
	if err := in.Validate(); err != nil {
		return models.Property{}, err
	}
	count, err := s.stores.Properties.Count()
	if err != nil {
		return models.Property{}, err
	}
	p := in.Build(count)
	if err := s.stores.Properties.Add(p); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// Edit updates the property with the given id in place. Exactly the
// matched record changes; occupancy and units are preserved.
func (s *PropertyService) Edit(id string, in forms.PropertyInput) (models.Property, error) {
	if err := in.ValidateEdit(); err != nil {
		return models.Property{}, err
	}
	p, err := s.stores.Properties.FindByID(id)
	if err != nil {
		return models.Property{}, err
	}
	in.ApplyTo(&p)
	if err := s.stores.Properties.Update(p); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// PropertyDetail is the unit-level view of one property.
type PropertyDetail struct {
	Property      models.Property `json:"property"`
	OccupancyRate int             `json:"occupancyRate"`
	Floors        []int           `json:"floors"`
	Units         []models.Unit   `json:"units"`
}

// Detail returns one property with its distinct floors and its units,
// optionally restricted to a single floor. floor is the page's floor
// selector value: empty or "all" shows every unit.
func (s *PropertyService) Detail(id, floor string) (PropertyDetail, error) {
	p, err := s.stores.Properties.FindByID(id)
	if err != nil {
		return PropertyDetail{}, err
	}
	units := []models.Unit(p.UnitsList)
	if floor != "" && floor != "all" {
		if n, err := strconv.Atoi(floor); err == nil {
			units = filter.Apply(units, func(u models.Unit) bool {
				return u.Floor == n
			})
		}
	}
	return PropertyDetail{
		Property:      p,
		OccupancyRate: p.OccupancyRate(),
		Floors:        p.FloorsOf(),
		Units:         units,
	}, nil
}
