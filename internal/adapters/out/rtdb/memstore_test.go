// internal/adapters/out/rtdb/memstore_test.go
package rtdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// memStore is an in-memory JSON tree implementing Store and Streamer, so
// the repositories run unchanged in tests.
type memStore struct {
	mu       sync.Mutex
	root     map[string]any
	pushN    int
	watchers []*memWatcher
}

type memWatcher struct {
	path    string
	events  chan struct{}
	fatal   chan error
	stopped bool
}

func newMemStore() *memStore {
	return &memStore{root: map[string]any{}}
}

func splitPath(p string) []string {
	var segs []string
	for _, s := range strings.Split(strings.Trim(p, "/"), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func (m *memStore) node(path string) any {
	var cur any = m.root
	for _, seg := range splitPath(path) {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[seg]
	}
	return cur
}

func roundtrip(v any) any {
	b, _ := json.Marshal(v)
	var out any
	_ = json.Unmarshal(b, &out)
	return out
}

func (m *memStore) Get(ctx context.Context, path string, v any) error {
	m.mu.Lock()
	b, err := json.Marshal(m.node(path))
	m.mu.Unlock()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (m *memStore) setLocked(path string, v any) {
	segs := splitPath(path)
	cur := m.root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := cur[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			cur[seg] = child
		}
		cur = child
	}
	cur[segs[len(segs)-1]] = roundtrip(v)
}

func (m *memStore) Set(ctx context.Context, path string, v any) error {
	m.mu.Lock()
	m.setLocked(path, v)
	m.mu.Unlock()
	m.notify(path)
	return nil
}

func (m *memStore) Patch(ctx context.Context, path string, fields map[string]any) error {
	m.mu.Lock()
	for k, v := range fields {
		m.setLocked(path+"/"+k, v)
	}
	m.mu.Unlock()
	m.notify(path)
	return nil
}

func (m *memStore) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	segs := splitPath(path)
	var cur any = m.root
	for _, seg := range segs[:len(segs)-1] {
		obj, ok := cur.(map[string]any)
		if !ok {
			cur = nil
			break
		}
		cur = obj[seg]
	}
	if obj, ok := cur.(map[string]any); ok {
		delete(obj, segs[len(segs)-1])
	}
	m.mu.Unlock()
	m.notify(path)
	return nil
}

func (m *memStore) Push(ctx context.Context, path string, v any) (string, error) {
	m.mu.Lock()
	m.pushN++
	key := fmt.Sprintf("push%04d", m.pushN)
	m.setLocked(path+"/"+key, v)
	m.mu.Unlock()
	m.notify(path)
	return key, nil
}

func (m *memStore) Query(ctx context.Context, path string, r Range, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := map[string]any{}
	if obj, ok := m.node(path).(map[string]any); ok {
		for key, child := range obj {
			rec, ok := child.(map[string]any)
			if !ok {
				continue
			}
			field, _ := rec[r.OrderBy].(string)
			if r.EqualTo != nil {
				if field == fmt.Sprint(r.EqualTo) {
					result[key] = child
				}
				continue
			}
			if r.StartAt != nil && field < fmt.Sprint(r.StartAt) {
				continue
			}
			if r.EndAt != nil && field > fmt.Sprint(r.EndAt) {
				continue
			}
			result[key] = child
		}
	}

	b, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (m *memStore) Stream(ctx context.Context, path string) (<-chan struct{}, <-chan error, func(), error) {
	w := &memWatcher{
		path:   strings.Trim(path, "/"),
		events: make(chan struct{}, 1),
		fatal:  make(chan error, 1),
	}
	m.mu.Lock()
	m.watchers = append(m.watchers, w)
	m.mu.Unlock()

	stop := func() {
		m.mu.Lock()
		w.stopped = true
		m.mu.Unlock()
	}
	return w.events, w.fatal, stop, nil
}

func (m *memStore) notify(mutated string) {
	mutated = strings.Trim(mutated, "/")
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		if w.stopped {
			continue
		}
		if !strings.HasPrefix(mutated+"/", w.path+"/") && !strings.HasPrefix(w.path+"/", mutated+"/") {
			continue
		}
		select {
		case w.events <- struct{}{}:
		default:
		}
	}
}

// failStreams simulates a fatal stream-level error (e.g. permission
// revoked) on every open watcher.
func (m *memStore) failStreams(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		if w.stopped {
			continue
		}
		select {
		case w.fatal <- err:
		default:
		}
	}
}
