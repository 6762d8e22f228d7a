package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no row matches the given id or filter.
// Callers distinguish it from connectivity or constraint failures with
// errors.Is.
var ErrNotFound = errors.New("record not found")

// Collection provides uniform create/read/update/delete access to one
// named table. Every operation is a single round trip with no retries
// and no client-side caching; callers receive either the stored rows or
// an error they can classify.
type Collection[T any] struct {
	db      *gorm.DB
	table   string
	idField string
}

// NewCollection creates an accessor for the given table keyed by "id"
func NewCollection[T any](db *gorm.DB, table string) *Collection[T] {
	return &Collection[T]{
		db:      db,
		table:   table,
		idField: "id",
	}
}

// WithIDField returns a copy of the collection keyed by a different
// column, e.g. "uuid"
func (c *Collection[T]) WithIDField(field string) *Collection[T] {
	clone := *c
	clone.idField = field
	return &clone
}

// Table returns the collection's table name
func (c *Collection[T]) Table() string {
	return c.table
}

// Create inserts one record. Server-assigned fields (the numeric id) are
// written back into record.
func (c *Collection[T]) Create(ctx context.Context, record *T) error {
	if err := c.db.WithContext(ctx).Table(c.table).Create(record).Error; err != nil {
		return fmt.Errorf("insert into %s: %w", c.table, err)
	}
	return nil
}

// List returns all records matching the conjunction of equality filters.
// A nil or empty filter map returns the whole collection. No matching
// rows is an empty slice, not an error.
func (c *Collection[T]) List(ctx context.Context, filters map[string]interface{}) ([]T, error) {
	query := c.db.WithContext(ctx).Table(c.table)
	for _, field := range sortedKeys(filters) {
		query = query.Where(fmt.Sprintf("%s = ?", field), filters[field])
	}

	records := make([]T, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("select from %s: %w", c.table, err)
	}
	return records, nil
}

// GetByID returns the record whose id column equals id, or ErrNotFound
func (c *Collection[T]) GetByID(ctx context.Context, id interface{}) (*T, error) {
	return c.GetBy(ctx, c.idField, id)
}

// GetBy returns the first record whose field equals value, or ErrNotFound
func (c *Collection[T]) GetBy(ctx context.Context, field string, value interface{}) (*T, error) {
	var record T
	err := c.db.WithContext(ctx).Table(c.table).
		Where(fmt.Sprintf("%s = ?", field), value).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select from %s: %w", c.table, err)
	}
	return &record, nil
}

// Update merges only the supplied columns into the matching record and
// returns the updated row. Unspecified fields are left untouched.
// Returns ErrNotFound when no row matched the id.
func (c *Collection[T]) Update(ctx context.Context, id interface{}, changes map[string]interface{}) (*T, error) {
	var record T
	result := c.db.WithContext(ctx).Table(c.table).Model(&record).
		Clauses(clause.Returning{}).
		Where(fmt.Sprintf("%s = ?", c.idField), id).
		Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("update %s: %w", c.table, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Delete removes the matching record. A second delete of the same id
// returns ErrNotFound rather than succeeding silently.
func (c *Collection[T]) Delete(ctx context.Context, id interface{}) error {
	var record T
	result := c.db.WithContext(ctx).Table(c.table).
		Where(fmt.Sprintf("%s = ?", c.idField), id).
		Delete(&record)
	if result.Error != nil {
		return fmt.Errorf("delete from %s: %w", c.table, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// sortedKeys keeps filter order stable so generated SQL is deterministic
func sortedKeys(filters map[string]interface{}) []string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
