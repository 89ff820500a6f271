// gorm.go
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

package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Gorm is the sqlite Store backend. Rows are ordered by creation time,
// newest first; seeded rows are stamped backwards from the seeding moment
// so their fixture order survives the sort.
type Gorm[T Entity] struct {
	db       *gorm.DB
	keyCol   string
	scopeCol string
	scopeVal string
}

// GormOption configures a Gorm store.
type GormOption[T Entity] func(*Gorm[T])

// WithKeyColumn overrides the primary key column used for id lookups.
// The default is "id".
func WithKeyColumn[T Entity](col string) GormOption[T] {
	return func(g *Gorm[T]) { g.keyCol = col }
}

// WithScope restricts the store to rows where col equals val. Used to
// split the owner and tenant maintenance boards over one table. Callers
// must set the scope column on entities before Add.
func WithScope[T Entity](col, val string) GormOption[T] {
	return func(g *Gorm[T]) { g.scopeCol = col; g.scopeVal = val }
}

// NewGorm returns a Store backed by the given database connection.
func NewGorm[T Entity](db *gorm.DB, opts ...GormOption[T]) *Gorm[T] {
	g := &Gorm[T]{db: db, keyCol: "id"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gorm[T]) scoped() *gorm.DB {
	tx := g.db.Model(new(T))
	if g.scopeCol != "" {
		tx = tx.Where(g.scopeCol+" = ?", g.scopeVal)
	}
	return tx
}

// Seed inserts fixture rows with creation stamps counting back from now,
// so the fixture order reads oldest-last under the newest-first sort.
func (g *Gorm[T]) Seed(rows []T) error {
	base := time.Now()
	for i := range rows {
		if s, ok := any(&rows[i]).(stampable); ok {
			s.SetCreatedAt(base.Add(-time.Duration(i+1) * time.Millisecond))
		}
		if err := g.db.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// List returns all rows, newest first.
func (g *Gorm[T]) List() ([]T, error) {
	var rows []T
	err := g.scoped().Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// FindByID returns the row with the given id.
func (g *Gorm[T]) FindByID(id string) (T, error) {
	var row T
	err := g.scoped().Where(g.keyCol+" = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, ErrNotFound
	}
	return row, err
}

// Add inserts a new row. The creation stamp is assigned by GORM, which
// places the row ahead of every seeded one.
func (g *Gorm[T]) Add(item T) error {
	return g.db.Create(&item).Error
}

// Update rewrites every column of the row whose id matches item's,
// keeping its creation stamp.
func (g *Gorm[T]) Update(item T) error {
	res := g.scoped().
		Where(g.keyCol+" = ?", item.RecordID()).
		Select("*").Omit("created_at").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row with the given id.
func (g *Gorm[T]) Delete(id string) error {
	res := g.scoped().Where(g.keyCol+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of rows.
func (g *Gorm[T]) Count() (int, error) {
	var n int64
	err := g.scoped().Count(&n).Error
	return int(n), err
}
