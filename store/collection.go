package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is implemented by every document type via an embedded models.Meta.
type Record interface {
	DocID() string
	SetDocID(id string)
	StampCreated(t time.Time)
	Touch(t time.Time)
}

// Op is a query operator understood by Where.
type Op string

const (
	OpEq Op = "=="
	OpNe Op = "!="
	OpGt Op = ">"
	OpLt Op = "<"
)

// Collection is a typed view over one KV key holding a document list.
// T is a pointer type, e.g. Collection[*models.Product].
type Collection[T Record] struct {
	store *Store
	key   string
}

func NewCollection[T Record](s *Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", c.key, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var docs []T
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", c.key, err)
	}
	return docs, nil
}

func (c *Collection[T]) save(ctx context.Context, docs []T) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", c.key, err)
	}
	return c.store.kv.Put(ctx, c.key, raw)
}

// Add stamps a time-ordered unique id and creation timestamp, appends the
// document and persists the whole list. Returns the new id.
func (c *Collection[T]) Add(ctx context.Context, doc T) (string, error) {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()

	docs, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	doc.SetDocID(newID())
	doc.StampCreated(time.Now().UTC())
	docs = append(docs, doc)
	if err := c.save(ctx, docs); err != nil {
		return "", err
	}
	return doc.DocID(), nil
}

// Get returns every document in the collection, empty when the key has
// never been written.
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()
	return c.load(ctx)
}

// Where returns the documents whose named JSON field satisfies op against
// value. An operator outside ==, !=, >, < is rejected with ErrUnsupportedOp.
func (c *Collection[T]) Where(ctx context.Context, field string, op Op, value any) ([]T, error) {
	switch op {
	case OpEq, OpNe, OpGt, OpLt:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOp, op)
	}

	docs, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, d := range docs {
		got, ok := fieldValue(d, field)
		if !ok {
			continue
		}
		match, err := compare(got, op, value)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, d)
		}
	}
	return out, nil
}

// Find returns the document with the given id and whether it exists.
func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T
	docs, err := c.Get(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, d := range docs {
		if d.DocID() == id {
			return d, true, nil
		}
	}
	return zero, false, nil
}

// Update applies mutate to the document with the given id and refreshes its
// update timestamp. A missing id is reported as ErrNotFound.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(T)) error {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()

	docs, err := c.load(ctx)
	if err != nil {
		return err
	}
	for _, d := range docs {
		if d.DocID() == id {
			mutate(d)
			d.Touch(time.Now().UTC())
			return c.save(ctx, docs)
		}
	}
	return fmt.Errorf("%w: %s/%s", ErrNotFound, c.key, id)
}

// Delete removes the document with the given id. A missing id is reported
// as ErrNotFound.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()

	docs, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := docs[:0]
	for _, d := range docs {
		if d.DocID() != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(docs) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, c.key, id)
	}
	return c.save(ctx, kept)
}

// Replace runs fn over the current document list under the collection lock
// and persists whatever it returns. Documents without an id are stamped as
// new. This is the primitive behind cart mutations, where the whole line
// set is rewritten at once.
func (c *Collection[T]) Replace(ctx context.Context, fn func([]T) []T) error {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()

	docs, err := c.load(ctx)
	if err != nil {
		return err
	}
	next := fn(docs)
	now := time.Now().UTC()
	for _, d := range next {
		if d.DocID() == "" {
			d.SetDocID(newID())
			d.StampCreated(now)
		}
	}
	return c.save(ctx, next)
}

// Clear drops the whole collection.
func (c *Collection[T]) Clear(ctx context.Context) error {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()
	return c.store.kv.Delete(ctx, c.key)
}

// newID returns a time-ordered unique identity (UUIDv7).
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// fieldValue resolves a JSON field name against a document, walking
// embedded structs the way encoding/json flattens them.
func fieldValue(doc any, field string) (any, bool) {
	v := reflect.ValueOf(doc)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	return structField(v, field)
}

func structField(v reflect.Value, field string) (any, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && v.Field(i).Kind() == reflect.Struct {
			if got, ok := structField(v.Field(i), field); ok {
				return got, true
			}
			continue
		}
		name := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" {
			if tag == "-" {
				continue
			}
			name = tag
		}
		if name == field {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}

func compare(got any, op Op, want any) (bool, error) {
	if gt, ok := got.(time.Time); ok {
		wt, ok := want.(time.Time)
		if !ok {
			return false, fmt.Errorf("store: cannot compare time against %T", want)
		}
		switch op {
		case OpNe:
			return !gt.Equal(wt), nil
		case OpGt:
			return gt.After(wt), nil
		case OpLt:
			return gt.Before(wt), nil
		default:
			return gt.Equal(wt), nil
		}
	}

	if gn, ok := toFloat(got); ok {
		if wn, ok := toFloat(want); ok {
			switch op {
			case OpNe:
				return gn != wn, nil
			case OpGt:
				return gn > wn, nil
			case OpLt:
				return gn < wn, nil
			default:
				return gn == wn, nil
			}
		}
	}

	if gs, ok := asString(got); ok {
		if ws, ok := asString(want); ok {
			switch op {
			case OpNe:
				return gs != ws, nil
			case OpGt:
				return gs > ws, nil
			case OpLt:
				return gs < ws, nil
			default:
				return gs == ws, nil
			}
		}
	}

	switch op {
	case OpEq:
		return reflect.DeepEqual(got, want), nil
	case OpNe:
		return !reflect.DeepEqual(got, want), nil
	}
	return false, fmt.Errorf("store: cannot order %T against %T", got, want)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func asString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
