package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud-srv/internal/model"
	pkgRedis "cloud-srv/pkg/redis"
)

func listKey(ownerName string) string {
	return fmt.Sprintf("files:list:%s", ownerName)
}

func (c *implCache) GetList(ctx context.Context, ownerName string) ([]model.File, bool, error) {
	raw, err := c.redis.Get(ctx, listKey(ownerName))
	if err != nil {
		if errors.Is(err, pkgRedis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var files []model.File
	if err := json.Unmarshal([]byte(raw), &files); err != nil {
		// Corrupt entry: treat as a miss so the store refreshes it.
		c.l.Warnf(ctx, "file.repository.redis.GetList: dropping corrupt entry for %s: %v", ownerName, err)
		_ = c.redis.Delete(ctx, listKey(ownerName))
		return nil, false, nil
	}

	return files, true, nil
}

func (c *implCache) SetList(ctx context.Context, ownerName string, files []model.File) error {
	raw, err := json.Marshal(files)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, listKey(ownerName), raw, listTTL)
}

func (c *implCache) InvalidateList(ctx context.Context, ownerName string) error {
	return c.redis.Delete(ctx, listKey(ownerName))
}
