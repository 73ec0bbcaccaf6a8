package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/smarttraffic/internal/common"
)

// LoadJSON decodes the document stored under key into v. It reports false,
// leaving v untouched, when the key is absent. A value that is not valid
// JSON for v is a read failure.
func LoadJSON(ctx context.Context, repo Repository, key string, v any) (bool, error) {
	data, err := repo.Get(ctx, key)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode metadata[%s]: %w: %w", key, common.ErrStorageRead, err)
	}
	return true, nil
}

// StoreJSON replaces the document under key with the JSON encoding of v.
func StoreJSON(ctx context.Context, repo Repository, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode metadata[%s]: %w: %w", key, common.ErrStorageWrite, err)
	}
	return repo.Set(ctx, key, data)
}
