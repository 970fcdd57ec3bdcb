package database

import (
	"context"
	"errors"
	"fmt"

	"oneclickticket/constants"
	"oneclickticket/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record was modified by another request")
	ErrSetMissing = errors.New("entity set is missing")
)

// MissingSetError reports a nil set on the context. It matches ErrSetMissing.
type MissingSetError struct {
	Name string
}

func (e *MissingSetError) Error() string {
	return fmt.Sprintf(constants.ENTITY_SET_IS_NULL, e.Name)
}

func (e *MissingSetError) Is(target error) bool {
	return target == ErrSetMissing
}

// Set is a typed collection over one table.
type Set[T any] struct {
	db   *gorm.DB
	name string
}

func NewSet[T any](db *gorm.DB, name string) *Set[T] {
	return &Set[T]{db: db, name: name}
}

func (s *Set[T]) Name() string { return s.name }

// DB returns a fresh session on the set's store.
func (s *Set[T]) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Query starts a composable query scoped to the set's table.
func (s *Set[T]) Query(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T))
}

func (s *Set[T]) All(ctx context.Context, preloads ...string) ([]T, error) {
	var rows []T
	q := s.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return rows, nil
}

func (s *Set[T]) Find(ctx context.Context, id uint, preloads ...string) (*T, error) {
	var row T
	q := s.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s %d: %w", s.name, id, err)
	}
	return &row, nil
}

func (s *Set[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.Query(ctx).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup %s %d: %w", s.name, id, err)
	}
	return count > 0, nil
}

func (s *Set[T]) Add(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return fmt.Errorf("insert %s: %w", s.name, err)
	}
	return nil
}

// Update replaces every column of entity when the stored version still equals entity's
// version, then bumps the version. Columns in omit keep their stored value.
func (s *Set[T]) Update(ctx context.Context, entity *T, omit ...string) error {
	rec, ok := any(entity).(model.Record)
	if !ok {
		return fmt.Errorf("update %s: entity has no version", s.name)
	}
	expected := rec.GetVersion()
	rec.SetVersion(expected + 1)

	columns := append([]string{"created_at", clause.Associations}, omit...)
	res := s.db.WithContext(ctx).
		Model(entity).
		Where("version = ?", expected).
		Select("*").
		Omit(columns...).
		Updates(entity)
	if res.Error != nil {
		rec.SetVersion(expected)
		return fmt.Errorf("update %s %d: %w", s.name, rec.GetID(), res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	rec.SetVersion(expected)
	exists, err := s.Exists(ctx, rec.GetID())
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConflict
}

// Remove deletes the row with id and reports whether one was there. A missing row is not an error.
func (s *Set[T]) Remove(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, fmt.Errorf("delete %s %d: %w", s.name, id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Context groups the sets. Each one may be nil.
type Context struct {
	Booking *Set[model.Booking]
	Cinema  *Set[model.Cinema]
	Movie   *Set[model.Movie]
}

func NewContext(db *gorm.DB) *Context {
	return &Context{
		Booking: NewSet[model.Booking](db, "Booking"),
		Cinema:  NewSet[model.Cinema](db, "Cinema"),
		Movie:   NewSet[model.Movie](db, "Movie"),
	}
}

// Of returns the set holding T.
func Of[T any](c *Context) (*Set[T], error) {
	var (
		set  any
		name string
	)
	switch any(new(T)).(type) {
	case *model.Booking:
		name = "Booking"
		if c != nil {
			set = c.Booking
		}
	case *model.Cinema:
		name = "Cinema"
		if c != nil {
			set = c.Cinema
		}
	case *model.Movie:
		name = "Movie"
		if c != nil {
			set = c.Movie
		}
	default:
		return nil, fmt.Errorf("no set for %T", *new(T))
	}
	s, _ := set.(*Set[T])
	if s == nil {
		return nil, &MissingSetError{Name: name}
	}
	return s, nil
}
