// store.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
// pms is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License for
// more details.

// Package store holds entity collections for the life of the process.
// Two backends exist: an in-memory slice store and a GORM store over an
// in-memory SQLite database. Neither persists anything across restarts.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an id does not match any record.
var ErrNotFound = errors.New("record not found")

// Entity is any model a store can hold.
type Entity interface {
	RecordID() string
}

// stampable lets a backend override an entity's creation time when
// seeding. models.Tracked satisfies it through its pointer receiver.
type stampable interface {
	SetCreatedAt(at time.Time)
}

// Store is a process-lifetime collection of one entity type. List returns
// records newest first: anything added at runtime precedes the seed rows,
// which keep their fixture order.
type Store[T Entity] interface {
	// Seed loads fixture rows into an empty store, preserving their order
	// behind all future additions.
	Seed(rows []T) error

	// List returns all records, newest first.
	List() ([]T, error)

	// FindByID returns the record with the given id, or ErrNotFound.
	FindByID(id string) (T, error)

	// Add inserts a new record at the front of the list.
	Add(item T) error

	// Update replaces the record whose id matches item's, or returns
	// ErrNotFound.
	Update(item T) error

	// Delete removes the record with the given id, or returns ErrNotFound.
	Delete(id string) error

	// Count returns the number of records.
	Count() (int, error)
}
