package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"

	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
)

// gzipMagic prefixes every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// readFeed opens a product feed, transparently decompressing gzip input.
func readFeed(ctx context.Context, path string) ([]catalog.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	var r io.Reader = br
	if head, err := br.Peek(len(gzipMagic)); err == nil && string(head) == string(gzipMagic) {
		gz, err := pgzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	products, err := decodeFeed(ctx, r)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return products, nil
}

// decodeFeed decodes a JSON array of products.
func decodeFeed(ctx context.Context, r io.Reader) ([]catalog.Product, error) {
	var products []catalog.Product
	d := jx.Decode(r, 64*1024)
	err := d.Arr(func(d *jx.Decoder) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := decodeProduct(d)
		if err != nil {
			return errors.Wrapf(err, "product #%d", len(products)+1)
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func decodeProduct(d *jx.Decoder) (catalog.Product, error) {
	var p catalog.Product
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "id", "_id":
			return str(d, &p.ID)
		case "title":
			return str(d, &p.Title)
		case "brand":
			return str(d, &p.Brand)
		case "unit":
			var v string
			if err := str(d, &v); err != nil {
				return err
			}
			p.Unit = catalog.Unit(v)
			return nil
		case "storeLocation":
			return str(d, &p.StoreLocation)
		case "image":
			return str(d, &p.Image)
		case "price":
			n, err := d.Num()
			if err != nil {
				return err
			}
			price, err := decimal.NewFromString(n.String())
			if err != nil {
				return errors.Wrap(err, "price")
			}
			p.Price = price
			return nil
		case "quantity":
			v, err := d.Int()
			p.Quantity = v
			return err
		case "isCollected":
			v, err := d.Bool()
			p.IsCollected = v
			return err
		case "expirationDate":
			var v string
			if err := str(d, &v); err != nil {
				return err
			}
			t, err := parseDate(v)
			if err != nil {
				return errors.Wrap(err, "expirationDate")
			}
			p.ExpirationDate = t
			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return p, err
	}
	return p, validateProduct(p)
}

func str(d *jx.Decoder, dst *string) error {
	if d.Next() == jx.Null {
		return d.Null()
	}
	v, err := d.Str()
	*dst = strings.TrimSpace(v)
	return err
}

func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

func validateProduct(p catalog.Product) error {
	switch {
	case p.ID == "":
		return errors.New("missing id")
	case p.Title == "":
		return errors.Errorf("%s: missing title", p.ID)
	case p.Price.IsNegative():
		return errors.Errorf("%s: negative price", p.ID)
	case p.Quantity < 0:
		return errors.Errorf("%s: negative quantity", p.ID)
	}
	switch p.Unit {
	case catalog.UnitKilogram, catalog.UnitLiter, catalog.UnitPiece:
		return nil
	default:
		return errors.Errorf("%s: unknown unit %q", p.ID, p.Unit)
	}
}

// dedupe merges feeds in order, keeping the first occurrence of every id.
// Bloom filter hits are confirmed against the exact set.
func dedupe(feeds [][]catalog.Product) (merged []catalog.Product, dropped []string) {
	var total int
	for _, f := range feeds {
		total += len(f)
	}
	filter := bloom.NewWithEstimates(uint(max(total, 1)), bloomFPR)
	seen := make(map[string]struct{}, total)

	for _, feed := range feeds {
		for _, p := range feed {
			if filter.TestString(p.ID) {
				if _, ok := seen[p.ID]; ok {
					dropped = append(dropped, p.ID)
					continue
				}
			}
			filter.AddString(p.ID)
			seen[p.ID] = struct{}{}
			merged = append(merged, p)
		}
	}
	return merged, dropped
}
