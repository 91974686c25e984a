// internal/adapters/out/rtdb/watch.go
package rtdb

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	common "flyadmin/internal/domain/common"
)

// Stream opens the Realtime Database REST event stream for path. Every
// put/patch anywhere under the path yields one event; auth_revoked and
// cancel terminate the stream with a fatal error on the fatal channel.
func (c *Client) Stream(ctx context.Context, path string) (<-chan struct{}, <-chan error, func(), error) {
	url := c.baseURL + "/" + strings.Trim(path, "/") + ".json"

	streamCtx, cancel := context.WithCancel(ctx)
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		return nil, nil, nil, wrapRemote(err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, nil, nil, wrapRemote(fmt.Errorf("event stream for %s: http error status: %d", path, resp.StatusCode))
	}

	events := make(chan struct{}, 1)
	fatal := make(chan error, 1)

	go func() {
		defer resp.Body.Close()
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "event:") {
				continue
			}
			switch strings.TrimSpace(strings.TrimPrefix(line, "event:")) {
			case "put", "patch":
				select {
				case events <- struct{}{}:
				default: // an event is already pending; snapshots coalesce
				}
			case "cancel", "auth_revoked":
				fatal <- wrapRemote(fmt.Errorf("event stream for %s: permission revoked", path))
				return
			}
		}
		if err := scanner.Err(); err != nil && streamCtx.Err() == nil {
			fatal <- wrapRemote(err)
		}
	}()

	return events, fatal, cancel, nil
}

// watchSnapshots drives one live subscription: load once for the initial
// snapshot, then reload on every remote event until the consumer closes the
// handle or the stream fails.
func watchSnapshots[T any](ctx context.Context, sr Streamer, path string, load func(context.Context) ([]T, error)) (*common.Subscription[[]T], error) {
	events, fatal, stop, err := sr.Stream(ctx, path)
	if err != nil {
		return nil, err
	}

	sub := common.NewSubscription[[]T]()
	go func() {
		defer stop()
		for {
			items, err := load(ctx)
			if err != nil {
				sub.Fail(err)
				return
			}
			sub.Publish(items)

			select {
			case <-sub.Done():
				return
			case <-ctx.Done():
				sub.Close()
				return
			case err := <-fatal:
				sub.Fail(err)
				return
			case <-events:
			}
		}
	}()
	return sub, nil
}

// watchCollection is watchSnapshots over a whole keyed collection, decoding
// every child and skipping malformed ones.
func watchCollection[T any](ctx context.Context, st Store, sr Streamer, path string, decode childDecoder[T]) (*common.Subscription[[]T], error) {
	return watchSnapshots(ctx, sr, path, func(ctx context.Context) ([]T, error) {
		return readCollection(ctx, st, path, decode)
	})
}

func readCollection[T any](ctx context.Context, st Store, path string, decode childDecoder[T]) ([]T, error) {
	var raw map[string]json.RawMessage
	if err := st.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return decodeChildren(raw, decode), nil
}
