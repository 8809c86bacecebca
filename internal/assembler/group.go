package assembler

import (
	"leasehold/internal/types"

	"github.com/google/uuid"
)

// Editable records can return a copy of themselves with one field changed.
type Editable[T any] interface {
	WithField(field, value string) (T, error)
}

type Entry[T any] struct {
	ID    uuid.UUID `json:"id"`
	Value T         `json:"value"`
}

// Group is an arena of repeated form entries addressed by stable ids, so
// removing one entry never shifts the identity of the others.
type Group[T Editable[T]] struct {
	Entries []Entry[T] `json:"entries"`
	Min     int        `json:"min,omitempty"`
	Max     int        `json:"max,omitempty"`
}

func NewGroup[T Editable[T]](minEntries, maxEntries int) Group[T] {
	group := Group[T]{Entries: []Entry[T]{}, Min: minEntries, Max: maxEntries}
	for range minEntries {
		group.Add()
	}
	return group
}

// Add appends an empty entry. At the cap it does nothing and reports false.
func (g *Group[T]) Add() (uuid.UUID, bool) {
	if g.Max > 0 && len(g.Entries) >= g.Max {
		return uuid.Nil, false
	}

	var zero T
	entry := Entry[T]{ID: uuid.New(), Value: zero}
	g.Entries = append(g.Entries, entry)
	return entry.ID, true
}

func (g *Group[T]) Edit(id uuid.UUID, field, value string) error {
	for i := range g.Entries {
		if g.Entries[i].ID != id {
			continue
		}

		updated, err := g.Entries[i].Value.WithField(field, value)
		if err != nil {
			return err
		}
		g.Entries[i].Value = updated
		return nil
	}
	return types.NotFound("entry " + id.String())
}

// Remove deletes the entry keeping the order of the rest. At the floor it
// does nothing and reports false.
func (g *Group[T]) Remove(id uuid.UUID) (bool, error) {
	index := g.indexOf(id)
	if index < 0 {
		return false, types.NotFound("entry " + id.String())
	}
	if len(g.Entries) <= g.Min {
		return false, nil
	}

	g.Entries = append(g.Entries[:index], g.Entries[index+1:]...)
	return true, nil
}

func (g *Group[T]) Len() int {
	return len(g.Entries)
}

// Values returns the entries in order, without their ids.
func (g *Group[T]) Values() []T {
	values := make([]T, 0, len(g.Entries))
	for _, entry := range g.Entries {
		values = append(values, entry.Value)
	}
	return values
}

func (g *Group[T]) indexOf(id uuid.UUID) int {
	for i, entry := range g.Entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}
