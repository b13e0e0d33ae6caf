package rulecache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/rulecache"
	"bincatalog/pkg/storage"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client, err := rulecache.NewClient(ctx, rulecache.ClientOptions{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	require.NoError(t, err)

	return client, func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	}
}

func samplePage() storage.Page[domain.ResolvedRule] {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	return storage.Page[domain.ResolvedRule]{
		Items: []domain.ResolvedRule{
			{
				MapID:        1,
				ValidationID: 7,
				Code:         "V1",
				DataType:     domain.DataTypeBool,
				Value:        domain.Value{Flag: domain.FlagYes},
				Status:       domain.StatusActive,
				ValidFrom:    from,
			},
			{
				MapID:        2,
				ValidationID: 8,
				Code:         "LIMIT",
				DataType:     domain.DataTypeNumber,
				Value:        domain.Value{Num: decimal.NewNullDecimal(decimal.RequireFromString("150.25"))},
				Priority:     1,
				Status:       domain.StatusActive,
				ValidFrom:    from,
			},
		},
		Total: 2,
	}
}

// fill caches page the way a resolution does: a lookup, then a put under
// the version the lookup observed.
func fill(ctx context.Context, t *testing.T, cache rulecache.Cache, key rulecache.Key, page storage.Page[domain.ResolvedRule]) {
	t.Helper()

	_, version, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, key, version, page))
}

func TestRedis_PutGet(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	cache := rulecache.New(client, rulecache.Options{})
	key := rulecache.Key{SubtypeCode: "ABC", Bin: "123456789", Status: domain.StatusActive}

	got, version, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)
	require.Equal(t, rulecache.Version{Generation: "0", Pair: "0"}, version)

	require.NoError(t, cache.Put(ctx, key, version, samplePage()))

	got, _, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int64(2), got.Total)
	require.Len(t, got.Items, 2)
	require.Equal(t, "V1", got.Items[0].Code)
	require.Equal(t, domain.FlagYes, got.Items[0].Value.Flag)
	require.True(t, got.Items[1].Value.Num.Decimal.Equal(decimal.RequireFromString("150.25")))

	// an explicit default page shares the entry of the zero page request
	explicit := key
	explicit.Page = storage.PageRequest{Page: 1, Size: storage.DefaultPageSize}
	got, _, err = cache.Get(ctx, explicit)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestRedis_InvalidatePair(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	cache := rulecache.New(client, rulecache.Options{})
	abc := rulecache.Key{SubtypeCode: "ABC", Bin: "123456789", Status: domain.StatusActive}
	xyz := rulecache.Key{SubtypeCode: "XYZ", Bin: "123456789", Status: domain.StatusActive}

	fill(ctx, t, cache, abc, samplePage())
	fill(ctx, t, cache, xyz, samplePage())

	require.NoError(t, cache.Invalidate(ctx, "ABC", "123456789"))

	got, _, err := cache.Get(ctx, abc)
	require.NoError(t, err)
	require.Nil(t, got)

	got, _, err = cache.Get(ctx, xyz)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestRedis_InvalidateAll(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	cache := rulecache.New(client, rulecache.Options{Prefix: "test:rules"})
	key := rulecache.Key{SubtypeCode: "ABC", Bin: "123456789", Status: domain.StatusInactive}

	fill(ctx, t, cache, key, samplePage())
	require.NoError(t, cache.InvalidateAll(ctx))

	got, _, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)

	// entries written after the bump are served again
	fill(ctx, t, cache, key, samplePage())
	got, _, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestRedis_PutAfterInvalidationIsUnreachable(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	cache := rulecache.New(client, rulecache.Options{})
	key := rulecache.Key{SubtypeCode: "ABC", Bin: "123456789", Status: domain.StatusActive}

	// a resolution misses and reads storage before a mapping change commits
	got, version, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)

	// the change worker runs before the resolution stores what it read
	require.NoError(t, cache.Invalidate(ctx, "ABC", "123456789"))
	require.NoError(t, cache.Put(ctx, key, version, storage.Page[domain.ResolvedRule]{Total: 0}))

	got, current, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)
	require.Equal(t, "1", current.Pair)

	// the same holds for a generation bump
	require.NoError(t, cache.InvalidateAll(ctx))
	require.NoError(t, cache.Put(ctx, key, current, samplePage()))

	got, _, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedis_EntriesExpire(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	cache := rulecache.New(client, rulecache.Options{TTL: time.Second})
	key := rulecache.Key{SubtypeCode: "ABC", Bin: "123456789", Status: domain.StatusActive}

	fill(ctx, t, cache, key, samplePage())

	require.Eventually(t, func() bool {
		got, _, err := cache.Get(ctx, key)

		return err == nil && got == nil
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNop(t *testing.T) {
	var cache rulecache.Cache = rulecache.Nop{}
	ctx := context.Background()
	key := rulecache.Key{SubtypeCode: "ABC", Bin: "123456789"}

	fill(ctx, t, cache, key, samplePage())
	got, _, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, cache.Invalidate(ctx, "ABC", "123456789"))
	require.NoError(t, cache.InvalidateAll(ctx))
}
