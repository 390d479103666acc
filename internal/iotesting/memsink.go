package iotesting

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
)

// MemSink is an in-memory sink.Sink for tests. Entities are kept as JSON
// documents, so values read back never alias values that were saved.
type MemSink struct {
	mu    sync.Mutex
	data  map[string]*table
	saves map[string]int

	// SaveErr, when set, is called before every Save. A non-nil result
	// fails the Save.
	SaveErr func(schema.Entity) error

	// FindErr fails every FindAll when set.
	FindErr error

	// CountErr fails every Count when set.
	CountErr error
}

type table struct {
	keys []string
	docs map[string][]byte
}

func (t *table) clone() *table {
	return &table{keys: slices.Clone(t.keys), docs: maps.Clone(t.docs)}
}

// NewMemSink creates an empty MemSink.
func NewMemSink() *MemSink {
	return &MemSink{
		data:  make(map[string]*table),
		saves: make(map[string]int),
	}
}

func (m *MemSink) FindAll(_ context.Context, dest any) error {
	slice, elem, kind, err := sink.Target(dest)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return m.FindErr
	}

	res := reflect.MakeSlice(slice.Type(), 0, 0)
	if t, ok := m.data[kind]; ok {
		for _, k := range t.keys {
			item := reflect.New(elem)
			if err := json.Unmarshal(t.docs[k], item.Interface()); err != nil {
				return err
			}
			res = reflect.Append(res, item.Elem())
		}
	}
	slice.Set(res)
	return nil
}

func (m *MemSink) Save(_ context.Context, entity schema.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		if err := m.SaveErr(entity); err != nil {
			return err
		}
	}

	doc, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	kind, key := entity.TableName(), entity.Key()
	t, ok := m.data[kind]
	if !ok {
		t = &table{docs: make(map[string][]byte)}
		m.data[kind] = t
	}
	if _, ok := t.docs[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.docs[key] = doc
	m.saves[kind]++
	return nil
}

func (m *MemSink) Count(
	_ context.Context,
	model schema.Entity,
) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	if t, ok := m.data[model.TableName()]; ok {
		return int64(len(t.keys)), nil
	}
	return 0, nil
}

// Transaction restores the content of the sink when fn fails.
func (m *MemSink) Transaction(
	_ context.Context,
	fn func(tx sink.Sink) error,
) error {
	m.mu.Lock()
	snapshot := make(map[string]*table, len(m.data))
	for k, t := range m.data {
		snapshot[k] = t.clone()
	}
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.data = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *MemSink) Close() error {
	return nil
}

// Saves returns how many times entities of the model's kind were saved,
// including rolled back saves.
func (m *MemSink) Saves(model schema.Entity) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[model.TableName()]
}

// Get loads one entity by key into dest. It reports false when there is
// no such entity.
func (m *MemSink) Get(dest schema.Entity, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.data[dest.TableName()]
	if !ok {
		return false
	}
	doc, ok := t.docs[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(doc, dest); err != nil {
		panic(fmt.Sprintf("cannot decode %s %s: %v", dest.TableName(), key, err))
	}
	return true
}
