package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sustainafood/grocery-orders/internal/domain/auth"
	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
	"github.com/sustainafood/grocery-orders/internal/handler"
	"github.com/sustainafood/grocery-orders/internal/storage/postgres"
)

const (
	bloomFPR         = 0.001
	defaultBatchSize = 500
	devTokenTTL      = 24 * time.Hour
)

// feedList collects repeated --feed flags.
type feedList []string

func (f *feedList) String() string { return strings.Join(*f, ",") }

func (f *feedList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var (
		databaseURL string
		feeds       feedList
		batchSize   int
		dryRun      bool
		jwtSecret   string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Var(&feeds, "feed", "product feed file, JSON or gzip-compressed JSON (repeatable)")
	flag.IntVar(&batchSize, "batch-size", defaultBatchSize, "products per upsert batch")
	flag.BoolVar(&dryRun, "dry-run", false, "parse and dedupe feeds without touching the database")
	flag.StringVar(&jwtSecret, "jwt-secret", "", "print development tokens signed with this secret (or GROCERY_AUTH_JWT_SECRET env)")
	flag.Parse()

	if len(feeds) == 0 {
		feeds = feedList{"db/seed/products.json"}
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" && !dryRun {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if jwtSecret == "" {
		jwtSecret = os.Getenv("GROCERY_AUTH_JWT_SECRET")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, feeds, batchSize, dryRun); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if jwtSecret != "" {
		if err := printDevTokens(jwtSecret); err != nil {
			slog.Error("issue dev tokens failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL string, feeds []string, batchSize int, dryRun bool) error {
	slog.Info("reading product feeds", slog.Int("feeds", len(feeds)))

	parsed, err := readFeeds(ctx, feeds)
	if err != nil {
		return errors.Wrap(err, "read feeds")
	}

	products, dropped := dedupe(parsed)
	if len(dropped) > 0 {
		slog.Warn("duplicate product ids skipped",
			slog.Int("count", len(dropped)),
			slog.Any("ids", dropped),
		)
	}
	slog.Info("products ready", slog.Int("count", len(products)))

	if dryRun {
		return nil
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	return writeProducts(ctx, postgres.NewCatalogStore(pool), products, batchSize)
}

// readFeeds parses every feed concurrently, preserving feed order.
func readFeeds(ctx context.Context, paths []string) ([][]catalog.Product, error) {
	out := make([][]catalog.Product, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			products, err := readFeed(ctx, path)
			if err != nil {
				return err
			}
			slog.Info("feed parsed",
				slog.String("path", path),
				slog.Int("products", len(products)),
			)
			out[i] = products
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func writeProducts(ctx context.Context, store *postgres.CatalogStore, products []catalog.Product, batchSize int) error {
	slog.Info("upserting products", slog.Int("count", len(products)))

	for start := 0; start < len(products); start += batchSize {
		end := min(start+batchSize, len(products))
		if err := store.Upsert(ctx, products[start:end]); err != nil {
			return errors.Wrapf(err, "upsert products %d-%d", start, end)
		}
		slog.Info("write progress", slog.Int("written", end), slog.Int("total", len(products)))
	}

	return nil
}

// devCallers are the identities printDevTokens issues tokens for.
var devCallers = []auth.Caller{
	{UserID: "dev-shopper", Role: auth.RoleUser, Email: "shopper@example.com"},
	{UserID: "dev-admin", Role: auth.RoleAdmin, Email: "admin@example.com", Brand: "Monoprix"},
	{UserID: "dev-superadmin", Role: auth.RoleSuperAdmin, Email: "ops@example.com"},
}

func printDevTokens(secret string) error {
	sec := handler.NewSecurityHandler([]byte(secret))
	for _, c := range devCallers {
		token, err := sec.IssueToken(c, devTokenTTL)
		if err != nil {
			return errors.Wrapf(err, "issue token for %s", c.UserID)
		}
		slog.Info("dev token",
			slog.String("user_id", c.UserID),
			slog.String("role", string(c.Role)),
			slog.String("token", token),
		)
	}
	return nil
}
