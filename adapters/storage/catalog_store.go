// Package storage persists the committed price catalog as a versioned JSON
// snapshot on the local filesystem.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/catalog"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/logging"
)

// SchemaVersion tags the snapshot format. Snapshots carrying any other tag
// are incompatible and are ignored wholesale rather than partially merged.
const SchemaVersion = "hcs_billing_v13"

// snapshot is the on-disk document: the schema tag plus a numeric price per
// SKU.
type snapshot struct {
	Schema string                 `json:"schema"`
	Prices map[string]json.Number `json:"prices"`
}

// CatalogStore reads and writes the persisted catalog snapshot at a fixed
// path.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a store rooted at the given snapshot path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Load returns the persisted catalog, falling back to the built-in defaults
// whenever the snapshot is missing, unreadable, version-mismatched, or
// malformed. Load never fails: a broken snapshot degrades to defaults.
func (s *CatalogStore) Load() catalog.Catalog {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("unreadable catalog snapshot, using defaults",
				zap.String("path", s.path), zap.Error(err))
		}
		return catalog.Defaults()
	}

	var doc snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Warn("corrupt catalog snapshot, using defaults",
			zap.String("path", s.path), zap.Error(err))
		return catalog.Defaults()
	}
	if doc.Schema != SchemaVersion {
		logging.Warn("incompatible catalog snapshot, using defaults",
			zap.String("path", s.path), zap.String("schema", doc.Schema))
		return catalog.Defaults()
	}

	prices := make(map[types.SKUID]decimal.Decimal, len(doc.Prices))
	for id, raw := range doc.Prices {
		price, err := decimal.NewFromString(raw.String())
		if err != nil {
			logging.Warn("invalid price in catalog snapshot, using defaults",
				zap.String("path", s.path), zap.String("sku", id))
			return catalog.Defaults()
		}
		prices[types.SKUID(id)] = price
	}

	loaded, err := catalog.New(prices)
	if err != nil {
		logging.Warn("incomplete catalog snapshot, using defaults",
			zap.String("path", s.path), zap.Error(err))
		return catalog.Defaults()
	}
	return loaded
}

// Save atomically replaces the snapshot with the full catalog: the document
// is written to a temp file in the same directory and renamed over the old
// snapshot, so a failed write leaves the prior snapshot intact.
func (s *CatalogStore) Save(c catalog.Catalog) error {
	doc := snapshot{
		Schema: SchemaVersion,
		Prices: make(map[string]json.Number),
	}
	for id, price := range c.Prices() {
		doc.Prices[string(id)] = json.Number(price.String())
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeInternal, "encoding catalog snapshot", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.TypePersistence, "creating snapshot directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".pricing-*.json")
	if err != nil {
		return errors.Wrap(errors.TypePersistence, "creating snapshot temp file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(errors.TypePersistence, "writing catalog snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.TypePersistence, "closing catalog snapshot", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.TypePersistence, "replacing catalog snapshot", err)
	}

	logging.Debug("catalog snapshot saved", zap.String("path", s.path))
	return nil
}
