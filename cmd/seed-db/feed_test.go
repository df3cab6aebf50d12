package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
)

const feedJSON = `[
  {"id": "p1", "title": "Bananas", "brand": "Monoprix", "price": 1.2, "unit": "kg",
   "storeLocation": "Centre", "expirationDate": "2026-10-22", "image": null,
   "quantity": 40, "isCollected": false, "category": "fruit"},
  {"_id": "p2", "title": " Milk ", "brand": "Delice", "price": 1.45, "unit": "L",
   "expirationDate": "2026-10-19T08:00:00Z", "quantity": 6, "isCollected": true}
]`

func writeFeed(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadFeed(t *testing.T) {
	for _, tc := range []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{name: "plain", data: func(*testing.T) []byte { return []byte(feedJSON) }},
		{name: "gzip", data: func(t *testing.T) []byte { return gzipped(t, []byte(feedJSON)) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFeed(t, "feed", tc.data(t))

			products, err := readFeed(context.Background(), path)
			require.NoError(t, err)
			require.Len(t, products, 2)

			assert.Equal(t, "p1", products[0].ID)
			assert.True(t, decimal.RequireFromString("1.2").Equal(products[0].Price))
			assert.Equal(t, catalog.UnitKilogram, products[0].Unit)
			assert.Equal(t, time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC), products[0].ExpirationDate)
			assert.Empty(t, products[0].Image)
			assert.Equal(t, 40, products[0].Quantity)

			assert.Equal(t, "p2", products[1].ID)
			assert.Equal(t, "Milk", products[1].Title)
			assert.Equal(t, catalog.UnitLiter, products[1].Unit)
			assert.True(t, products[1].IsCollected)
		})
	}
}

func TestReadFeed_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
		want string
	}{
		{name: "not an array", data: `{"id":"p1"}`},
		{name: "missing id", data: `[{"title":"x","unit":"kg"}]`, want: "missing id"},
		{name: "unknown unit", data: `[{"id":"p1","title":"x","unit":"box"}]`, want: `unknown unit "box"`},
		{name: "negative quantity", data: `[{"id":"p1","title":"x","unit":"kg","quantity":-1}]`, want: "negative quantity"},
		{name: "bad date", data: `[{"id":"p1","title":"x","unit":"kg","expirationDate":"soon"}]`, want: "expirationDate"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFeed(t, "feed.json", []byte(tc.data))

			_, err := readFeed(context.Background(), path)
			require.Error(t, err)
			if tc.want != "" {
				assert.Contains(t, err.Error(), tc.want)
			}
		})
	}
}

func TestReadFeeds_KeepsOrder(t *testing.T) {
	first := writeFeed(t, "a.json", []byte(`[{"id":"p1","title":"a","unit":"kg"}]`))
	second := writeFeed(t, "b.json.gz", gzipped(t, []byte(`[{"id":"p2","title":"b","unit":"pcs"}]`)))

	feeds, err := readFeeds(context.Background(), []string{first, second})
	require.NoError(t, err)
	require.Len(t, feeds, 2)
	assert.Equal(t, "p1", feeds[0][0].ID)
	assert.Equal(t, "p2", feeds[1][0].ID)

	_, err = readFeeds(context.Background(), []string{first, filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

func TestDedupe(t *testing.T) {
	feeds := [][]catalog.Product{
		{{ID: "p1", Title: "first"}, {ID: "p2"}, {ID: "p1", Title: "same feed"}},
		{{ID: "p3"}, {ID: "p2", Title: "second feed"}},
		nil,
	}

	merged, dropped := dedupe(feeds)

	ids := make([]string, 0, len(merged))
	for _, p := range merged {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids)
	assert.Equal(t, "first", merged[0].Title)
	assert.Equal(t, []string{"p1", "p2"}, dropped)
}

func TestDedupe_Empty(t *testing.T) {
	merged, dropped := dedupe(nil)
	assert.Empty(t, merged)
	assert.Empty(t, dropped)
}

func TestFeedList(t *testing.T) {
	var f feedList
	require.NoError(t, f.Set("a.json"))
	require.NoError(t, f.Set("b.json.gz"))
	assert.Equal(t, "a.json,b.json.gz", f.String())
	assert.True(t, strings.HasSuffix(f[1], ".gz"))
}
