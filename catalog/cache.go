package catalog

import (
	"time"

	"github.com/framecast-cli/framecast/filesystem"
	"github.com/framecast-cli/framecast/key"
	"github.com/framecast-cli/framecast/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// snapshotCacher persists the combined item listing to disk so restarts do not
// refetch the whole catalog while the snapshot is still fresh.
func snapshotCacher() *gache.Cache[[]Item] {
	return gache.New[[]Item](&gache.Options{
		Path:       where.Catalog(),
		Lifetime:   time.Duration(viper.GetInt(key.CatalogCacheHours)) * time.Hour,
		FileSystem: &filesystem.GacheFs{},
	})
}

// CachedSnapshot returns the persisted catalog listing, if present and fresh.
func CachedSnapshot() mo.Option[[]Item] {
	items, expired, err := snapshotCacher().Get()
	if err != nil || expired || len(items) == 0 {
		return mo.None[[]Item]()
	}
	return mo.Some(items)
}

// SaveSnapshot persists the catalog listing for future starts.
func SaveSnapshot(items []Item) error {
	return snapshotCacher().Set(items)
}
