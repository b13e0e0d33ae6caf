// Package rulecache caches rule resolution pages in Redis.
//
// Entries are never deleted on writes. Instead every key embeds two
// counters: a global generation, bumped when a validation definition
// changes, and a per-pair version, bumped when a mapping of one
// (subtype, effective BIN) pair changes. Bumping either makes the old
// entries unreachable; they expire through their TTL.
package rulecache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/metrics"
	"bincatalog/pkg/storage"
)

// DefaultTTL bounds how long a page may be served after a validity window
// boundary has passed.
const DefaultTTL = time.Minute

const defaultPrefix = "bincatalog:rules"

// Key identifies one cached resolution page.
type Key struct {
	SubtypeCode string
	Bin         string
	Status      domain.Status
	Page        storage.PageRequest
}

// Version holds the counters a lookup observed. A page read from storage
// after a miss is stored under the Version of that miss, so an
// invalidation that lands in between leaves the page unreachable.
type Version struct {
	Generation string
	Pair       string
}

// Cache stores resolution pages.
type Cache interface {
	// Get returns a nil page on a miss, together with the observed version.
	Get(ctx context.Context, key Key) (*storage.Page[domain.ResolvedRule], Version, error)
	// Put stores page under version, as returned by Get for the same key.
	Put(ctx context.Context, key Key, version Version, page storage.Page[domain.ResolvedRule]) error
	// Invalidate drops every page of one (subtype, effective BIN) pair.
	Invalidate(ctx context.Context, subtypeCode, bin string) error
	// InvalidateAll drops every page.
	InvalidateAll(ctx context.Context) error
}

// Nop never hits. It is used when Redis is disabled.
type Nop struct{}

func (Nop) Get(context.Context, Key) (*storage.Page[domain.ResolvedRule], Version, error) {
	return nil, Version{}, nil
}
func (Nop) Put(context.Context, Key, Version, storage.Page[domain.ResolvedRule]) error { return nil }
func (Nop) Invalidate(context.Context, string, string) error                           { return nil }
func (Nop) InvalidateAll(context.Context) error                                        { return nil }

// Options configure the Redis cache.
type Options struct {
	// TTL of cached pages; DefaultTTL when zero.
	TTL time.Duration
	// Prefix of every key; "bincatalog:rules" when empty.
	Prefix string
}

// Redis is a Cache backed by a go-redis client. The client lifecycle is
// managed by the caller.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

var _ Cache = (*Redis)(nil)

// New creates a Redis-backed cache.
func New(client redis.UniversalClient, opts Options) *Redis {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	return &Redis{client: client, ttl: opts.TTL, prefix: opts.Prefix}
}

func (r *Redis) generationKey() string { return r.prefix + ":gen" }

func (r *Redis) versionKey(subtypeCode, bin string) string {
	return r.prefix + ":ver:" + subtypeCode + ":" + bin
}

// version reads the current counters of key.
func (r *Redis) version(ctx context.Context, key Key) (Version, error) {
	counters, err := r.client.MGet(ctx, r.generationKey(), r.versionKey(key.SubtypeCode, key.Bin)).Result()
	if err != nil {
		return Version{}, errors.Wrap(err, "could not read cache versions")
	}

	return Version{Generation: counter(counters[0]), Pair: counter(counters[1])}, nil
}

func (r *Redis) pageKey(key Key, version Version) string {
	page := key.Page.Normalize()

	return fmt.Sprintf("%s:page:%s:%s:%s:%s:%s:%d:%d",
		r.prefix,
		orZero(version.Generation),
		key.SubtypeCode,
		key.Bin,
		orZero(version.Pair),
		key.Status,
		page.Page,
		page.Size,
	)
}

// counter renders a missing counter as 0.
func counter(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return "0"
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return "0"
	}

	return s
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}

	return s
}

// Get returns the cached page for key, or nil when there is none.
func (r *Redis) Get(ctx context.Context, key Key) (*storage.Page[domain.ResolvedRule], Version, error) {
	version, err := r.version(ctx, key)
	if err != nil {
		metrics.RuleCacheLookups.WithLabelValues("error").Inc()

		return nil, Version{}, err
	}

	raw, err := r.client.Get(ctx, r.pageKey(key, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RuleCacheLookups.WithLabelValues("miss").Inc()

		return nil, version, nil
	}
	if err != nil {
		metrics.RuleCacheLookups.WithLabelValues("error").Inc()

		return nil, version, errors.Wrap(err, "could not read cached page")
	}

	var page storage.Page[domain.ResolvedRule]
	if err := json.Unmarshal(raw, &page); err != nil {
		metrics.RuleCacheLookups.WithLabelValues("error").Inc()

		return nil, version, errors.Wrap(err, "could not decode cached page")
	}
	metrics.RuleCacheLookups.WithLabelValues("hit").Inc()

	return &page, version, nil
}

// Put stores page under version. The counters are not read again: when
// they moved since the lookup, the entry is written where nobody looks.
func (r *Redis) Put(ctx context.Context, key Key, version Version, page storage.Page[domain.ResolvedRule]) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return errors.Wrap(err, "could not encode page")
	}

	if err := r.client.Set(ctx, r.pageKey(key, version), raw, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "could not cache page")
	}

	return nil
}

// Invalidate bumps the version of the pair.
func (r *Redis) Invalidate(ctx context.Context, subtypeCode, bin string) error {
	if err := r.client.Incr(ctx, r.versionKey(subtypeCode, bin)).Err(); err != nil {
		return errors.Wrap(err, "could not bump cache version")
	}

	return nil
}

// InvalidateAll bumps the global generation.
func (r *Redis) InvalidateAll(ctx context.Context) error {
	if err := r.client.Incr(ctx, r.generationKey()).Err(); err != nil {
		return errors.Wrap(err, "could not bump cache generation")
	}

	return nil
}

// ClientOptions configure the Redis connection.
type ClientOptions struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, opts ClientOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "could not ping redis")
	}

	return client, nil
}
