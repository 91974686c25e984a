// internal/application/query/users_feed.go
package query

import (
	"sort"
	"sync"

	common "flyadmin/internal/domain/common"
	userdom "flyadmin/internal/domain/user"
)

// UsersFeed merges the current user collection with the legacy admin
// collection into one list. Ids never repeat: when both collections hold a
// record for the same id, the current collection wins regardless of which
// snapshot arrived last. Ordered by createdAt descending.
type UsersFeed struct {
	mu      sync.Mutex
	current []userdom.User
	legacy  []userdom.User
	merged  []userdom.User
	subs    []*common.Subscription[[]userdom.User]
}

func NewUsersFeed() *UsersFeed {
	return &UsersFeed{}
}

func (f *UsersFeed) Subscribe() *common.Subscription[[]userdom.User] {
	sub := common.NewSubscription[[]userdom.User]()
	f.mu.Lock()
	f.subs = append(f.subs, sub)
	snapshot := f.merged
	f.mu.Unlock()
	sub.Publish(snapshot)
	return sub
}

func (f *UsersFeed) SetCurrent(users []userdom.User) {
	f.mu.Lock()
	f.current = users
	f.recomputeLocked()
	f.mu.Unlock()
}

func (f *UsersFeed) SetLegacy(users []userdom.User) {
	f.mu.Lock()
	f.legacy = users
	f.recomputeLocked()
	f.mu.Unlock()
}

func (f *UsersFeed) Current() []userdom.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.merged
}

func (f *UsersFeed) Close() {
	f.mu.Lock()
	subs := f.subs
	f.subs = nil
	f.mu.Unlock()
	for _, s := range subs {
		s.Close()
	}
}

func (f *UsersFeed) recomputeLocked() {
	f.merged = mergeUsers(f.current, f.legacy)

	alive := f.subs[:0]
	for _, s := range f.subs {
		select {
		case <-s.Done():
			continue
		default:
		}
		s.Publish(f.merged)
		alive = append(alive, s)
	}
	f.subs = alive
}

func mergeUsers(current, legacy []userdom.User) []userdom.User {
	seen := make(map[string]bool, len(current))
	out := make([]userdom.User, 0, len(current)+len(legacy))

	for _, u := range current {
		if u.ID == "" || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		out = append(out, u)
	}
	for _, u := range legacy {
		if u.ID == "" || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		out = append(out, u)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
