package storage_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/adapters/storage"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/catalog"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
)

func tempStore(t *testing.T) (*storage.CatalogStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricing.json")
	return storage.NewCatalogStore(path), path
}

func TestLoadMissingSnapshotFallsBackToDefaults(t *testing.T) {
	store, _ := tempStore(t)
	require.True(t, store.Load().Equal(catalog.Defaults()))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := tempStore(t)

	prices := catalog.Defaults().Prices()
	prices["evs"] = decimal.RequireFromString("0.42")
	prices["flavor_1_1"] = decimal.RequireFromString("17.50")
	edited, err := catalog.New(prices)
	require.NoError(t, err)

	require.NoError(t, store.Save(edited))
	loaded := store.Load()
	require.True(t, loaded.Equal(edited))
	require.Equal(t, "0.42", types.FormatAmount(loaded.Get("evs")))
	require.Equal(t, "17.50", types.FormatAmount(loaded.Get("flavor_1_1")))
}

func TestLoadCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	require.True(t, store.Load().Equal(catalog.Defaults()))
}

func TestLoadVersionMismatchFallsBackToDefaults(t *testing.T) {
	store, path := tempStore(t)

	doc := map[string]interface{}{
		"schema": "hcs_billing_v12",
		"prices": map[string]float64{"evs": 0.99},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	require.True(t, store.Load().Equal(catalog.Defaults()))
}

func TestLoadIncompleteSnapshotFallsBackToDefaults(t *testing.T) {
	store, path := tempStore(t)

	// Well-formed JSON with the right schema but a missing SKU.
	prices := map[string]float64{}
	for _, id := range types.AllSKUs() {
		prices[string(id)] = 1.00
	}
	delete(prices, "bandwidth")
	data, err := json.Marshal(map[string]interface{}{
		"schema": storage.SchemaVersion,
		"prices": prices,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	require.True(t, store.Load().Equal(catalog.Defaults()))
}

func TestSaveReplacesPriorSnapshot(t *testing.T) {
	store, _ := tempStore(t)

	prices := catalog.Defaults().Prices()
	prices["waf"] = decimal.NewFromInt(50)
	first, err := catalog.New(prices)
	require.NoError(t, err)
	require.NoError(t, store.Save(first))

	prices["waf"] = decimal.NewFromInt(60)
	second, err := catalog.New(prices)
	require.NoError(t, err)
	require.NoError(t, store.Save(second))

	require.Equal(t, "60.00", types.FormatAmount(store.Load().Get("waf")))
}

func TestSaveSnapshotIsVersionedJSON(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.Save(catalog.Defaults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Schema string                 `json:"schema"`
		Prices map[string]json.Number `json:"prices"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, storage.SchemaVersion, doc.Schema)
	require.Len(t, doc.Prices, len(types.AllSKUs()))
	require.Equal(t, "0.15", doc.Prices["evs"].String())
}
