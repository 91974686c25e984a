// internal/adapters/out/rtdb/inventory_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	inventorydom "flyadmin/internal/domain/inventory"
)

type InventoryRepositoryRTDB struct {
	store Store
}

func NewInventoryRepositoryRTDB(c *Client) *InventoryRepositoryRTDB {
	return &InventoryRepositoryRTDB{store: c}
}

var _ inventorydom.Repository = (*InventoryRepositoryRTDB)(nil)

func decodeInventoryLog(key string, raw json.RawMessage) (inventorydom.Log, bool) {
	return decodeRecord(key, raw, func(l *inventorydom.Log, id string) { l.ID = id })
}

// Append writes the log under a generated key. Logs are immutable; there is
// no update or delete.
func (r *InventoryRepositoryRTDB) Append(ctx context.Context, l inventorydom.Log) (string, error) {
	if strings.TrimSpace(l.VariantID) == "" {
		return "", inventorydom.ErrInvalidVariantID
	}
	if l.Delta == 0 {
		return "", inventorydom.ErrZeroDelta
	}
	l.ID = ""
	return r.store.Push(ctx, pathInventoryLogs, l)
}

func (r *InventoryRepositoryRTDB) ListByVariant(ctx context.Context, variantID string) ([]inventorydom.Log, error) {
	var raw map[string]json.RawMessage
	err := r.store.Query(ctx, pathInventoryLogs, Range{
		OrderBy: "variantId",
		EqualTo: strings.TrimSpace(variantID),
	}, &raw)
	if err != nil {
		return nil, err
	}
	logs := decodeChildren(raw, decodeInventoryLog)
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].CreatedAt < logs[j].CreatedAt })
	return logs, nil
}
