package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get() = %v, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get() hit on empty cache")
	}

	if err := c.Set(ctx, "emote:frog", []byte{0x89, 'P', 'N', 'G'}, time.Hour); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, hit, err := c.Get(ctx, "emote:frog")
	if err != nil || !hit || string(data) != "\x89PNG" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "emote:frog"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "emote:frog"); hit {
		t.Error("Get() hit after Delete")
	}
	if err := c.Delete(ctx, "emote:frog"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	c.Set(ctx, "short", []byte("x"), time.Millisecond)
	c.Set(ctx, "forever", []byte("y"), 0)
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl expired")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	path := c.path("bad")
	os.MkdirAll(filepath.Dir(path), 0o755)
	os.WriteFile(path, []byte("{not json"), 0o644)

	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("Get() = %v, %v; want silent miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		c.Set(ctx, k, []byte(k), 0)
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir not empty: %v", entries)
	}
}

func TestNamespace(t *testing.T) {
	ctx := context.Background()
	base, _ := NewFileCache(t.TempDir())
	emotes := Namespace(base, "emote:")
	nested := Namespace(Namespace(base, "a:"), "b:")

	emotes.Set(ctx, "frog", []byte("1"), 0)
	if _, hit, _ := base.Get(ctx, "emote:frog"); !hit {
		t.Error("namespaced key not stored under prefix")
	}
	if _, hit, _ := base.Get(ctx, "frog"); hit {
		t.Error("namespace leaked unprefixed key")
	}

	nested.Set(ctx, "k", []byte("2"), 0)
	if data, hit, _ := base.Get(ctx, "a:b:k"); !hit || string(data) != "2" {
		t.Error("nested namespaces should concatenate prefixes")
	}
}

func TestHash(t *testing.T) {
	if Hash([]byte("hello")) != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if Hash([]byte("hello")) == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(Hash([]byte("hello"))) != 64 {
		t.Error("Hash length should be 64")
	}
}

func TestNewRedisCache(t *testing.T) {
	if _, err := NewRedisCache("not a url"); err == nil {
		t.Error("NewRedisCache() should reject malformed URLs")
	}

	url := os.Getenv("ECBINGO_TEST_REDIS")
	if url == "" {
		t.Skip("ECBINGO_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(url)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if err := c.Ping(ctx); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	key := "ecbingo-test:" + t.Name()
	defer c.Delete(ctx, key)
	if err := c.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if data, hit, err := c.Get(ctx, key); err != nil || !hit || string(data) != "v" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}
}
