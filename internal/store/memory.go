package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory is an in-process DocumentStore with the same observable semantics as
// the Firestore adapter: generated-ID documents, partial-merge updates,
// idempotent deletes and insertion-ordered tie-breaking. Used in tests.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]*memDoc
}

type memDoc struct {
	id   string
	data map[string]any
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]*memDoc)}
}

var _ DocumentStore = (*Memory)(nil)

func (s *Memory) ListAll(ctx context.Context, collection string) ([]Document, error) {
	return s.List(ctx, collection, Query{})
}

func (s *Memory) List(_ context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, d := range s.collections[collection] {
		ok, err := matches(d.data, q.Filters)
		if err != nil {
			return nil, err
		}
		if ok {
			docs = append(docs, Document{ID: d.id, Data: maps.Clone(d.data)})
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			c := compare(docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy])
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *Memory) Get(_ context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.collections[collection] {
		if d.id == id {
			return &Document{ID: d.id, Data: maps.Clone(d.data)}, nil
		}
	}
	return nil, nil
}

func (s *Memory) Create(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.collections[collection] {
		if d.id == id {
			return fmt.Errorf("document %s/%s already exists", collection, id)
		}
	}
	s.collections[collection] = append(s.collections[collection], &memDoc{
		id:   id,
		data: maps.Clone(data),
	})
	return nil
}

func (s *Memory) Update(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.collections[collection] {
		if d.id == id {
			for k, v := range data {
				d.data[k] = v
			}
			return nil
		}
	}
	// Merge-set creates the document when absent, matching Firestore Set.
	s.collections[collection] = append(s.collections[collection], &memDoc{
		id:   id,
		data: maps.Clone(data),
	})
	return nil
}

func (s *Memory) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, d := range docs {
		if d.id == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	// Deleting an absent document is a no-op.
	return nil
}

func matches(data map[string]any, filters []Filter) (bool, error) {
	for _, f := range filters {
		c := compare(data[f.Field], f.Value)
		var ok bool
		switch f.Op {
		case "==":
			ok = c == 0
		case "<":
			ok = c < 0
		case "<=":
			ok = c <= 0
		case ">":
			ok = c > 0
		case ">=":
			ok = c >= 0
		default:
			return false, fmt.Errorf("unsupported filter op %q", f.Op)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func compare(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		bv, ok := b.(bool)
		if ok && av == bv {
			return 0
		}
		return -1
	default:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if aok && bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return -1
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// MemoryObjects is an in-process ObjectStore counterpart to Memory.
type MemoryObjects struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryObjects() *MemoryObjects {
	return &MemoryObjects{objects: make(map[string][]byte)}
}

var _ ObjectStore = (*MemoryObjects)(nil)

func (s *MemoryObjects) Upload(_ context.Context, path string, r io.Reader, _ string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.objects[path] = buf.Bytes()
	s.mu.Unlock()

	return "memory://" + path, nil
}

func (s *MemoryObjects) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var paths []string
	for path := range s.objects {
		if strings.HasPrefix(path, prefix) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *MemoryObjects) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	delete(s.objects, path)
	s.mu.Unlock()
	return nil
}
