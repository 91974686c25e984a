// internal/adapters/out/rtdb/store.go
package rtdb

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/db"
)

// Range bounds an ordered child query (orderByChild with startAt/endAt or
// equalTo), used for email prefix search and exact role lookup.
type Range struct {
	OrderBy string
	StartAt any
	EndAt   any
	EqualTo any
}

// Store is the subset of the Realtime Database surface the repositories
// use. The firebase client implements it; tests run the same repositories
// against an in-memory tree.
type Store interface {
	// Get reads the subtree at path into v. An absent subtree decodes as
	// JSON null.
	Get(ctx context.Context, path string, v any) error
	// Set overwrites the subtree at path.
	Set(ctx context.Context, path string, v any) error
	// Patch updates only the named children at path.
	Patch(ctx context.Context, path string, fields map[string]any) error
	// Delete removes the subtree at path.
	Delete(ctx context.Context, path string) error
	// Push writes v under a generated unique key and returns the key.
	Push(ctx context.Context, path string, v any) (string, error)
	// Query reads the children of path matching r into v (a keyed object).
	Query(ctx context.Context, path string, r Range, v any) error
}

// Streamer opens the push channel behind live subscriptions: one event per
// remote mutation anywhere under path. The initial snapshot read belongs to
// the caller. stop releases the remote listener.
type Streamer interface {
	Stream(ctx context.Context, path string) (events <-chan struct{}, fatal <-chan error, stop func(), err error)
}

// Client wraps the Firebase Admin SDK database client plus an authorized
// HTTP client for the REST event stream (the Admin SDK itself has no
// listener API).
type Client struct {
	db      *db.Client
	http    *http.Client
	baseURL string
}

func NewClient(dbc *db.Client, streamClient *http.Client, databaseURL string) *Client {
	return &Client{
		db:      dbc,
		http:    streamClient,
		baseURL: strings.TrimRight(strings.TrimSpace(databaseURL), "/"),
	}
}

var _ Store = (*Client)(nil)
var _ Streamer = (*Client)(nil)

func (c *Client) Get(ctx context.Context, path string, v any) error {
	if err := c.db.NewRef(path).Get(ctx, v); err != nil {
		return wrapRemote(err)
	}
	return nil
}

func (c *Client) Set(ctx context.Context, path string, v any) error {
	if err := c.db.NewRef(path).Set(ctx, v); err != nil {
		return wrapRemote(err)
	}
	return nil
}

func (c *Client) Patch(ctx context.Context, path string, fields map[string]any) error {
	if err := c.db.NewRef(path).Update(ctx, fields); err != nil {
		return wrapRemote(err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	if err := c.db.NewRef(path).Delete(ctx); err != nil {
		return wrapRemote(err)
	}
	return nil
}

func (c *Client) Push(ctx context.Context, path string, v any) (string, error) {
	ref, err := c.db.NewRef(path).Push(ctx, v)
	if err != nil {
		return "", wrapRemote(err)
	}
	return ref.Key, nil
}

func (c *Client) Query(ctx context.Context, path string, r Range, v any) error {
	q := c.db.NewRef(path).OrderByChild(r.OrderBy)
	if r.EqualTo != nil {
		q = q.EqualTo(r.EqualTo)
	} else {
		if r.StartAt != nil {
			q = q.StartAt(r.StartAt)
		}
		if r.EndAt != nil {
			q = q.EndAt(r.EndAt)
		}
	}
	if err := q.Get(ctx, v); err != nil {
		return wrapRemote(err)
	}
	return nil
}
