// Package memstore holds in-memory repositories with the same ordering and
// default rules as the MongoDB adapters. Tests use it in place of a database.
package memstore

import (
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/pkg/errors"
)

// clock never returns the same instant twice, so created_at orders records
// the way insertion did.
type clock struct {
	mu   sync.Mutex
	last time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := time.Now().UTC().Truncate(time.Millisecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Millisecond)
	}
	c.last = t
	return t
}

type table[T any] struct {
	mu       sync.Mutex
	rows     []T
	id       func(*T) *primitive.ObjectID
	resource string
	calls    int
	fail     error
}

func newTable[T any](resource string, id func(*T) *primitive.ObjectID) *table[T] {
	return &table[T]{id: id, resource: resource}
}

// Calls is the number of operations attempted against the table.
func (t *table[T]) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

// SetError makes every following operation fail with err. nil restores normal behavior.
func (t *table[T]) SetError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fail = err
}

// begin must be called with mu held.
func (t *table[T]) begin() error {
	t.calls++
	return t.fail
}

func (t *table[T]) insert(record *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.begin(); err != nil {
		return err
	}
	*t.id(record) = primitive.NewObjectID()
	t.rows = append(t.rows, *record)
	return nil
}

func (t *table[T]) list(match func(*T) bool, less func(a, b *T) bool) ([]*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.begin(); err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(t.rows))
	for i := range t.rows {
		row := t.rows[i]
		if match == nil || match(&row) {
			out = append(out, &row)
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out, nil
}

func (t *table[T]) get(id primitive.ObjectID) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.begin(); err != nil {
		return nil, err
	}
	if i := t.index(id); i >= 0 {
		row := t.rows[i]
		return &row, nil
	}
	return nil, errors.NotFound(t.resource, nil)
}

func (t *table[T]) modify(id primitive.ObjectID, apply func(*T)) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.begin(); err != nil {
		return 0, err
	}
	i := t.index(id)
	if i < 0 {
		return 0, nil
	}
	apply(&t.rows[i])
	return 1, nil
}

func (t *table[T]) remove(id primitive.ObjectID) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.begin(); err != nil {
		return 0, err
	}
	i := t.index(id)
	if i < 0 {
		return 0, nil
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return 1, nil
}

func (t *table[T]) index(id primitive.ObjectID) int {
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			return i
		}
	}
	return -1
}

func assign[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
