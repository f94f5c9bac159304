package cache

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always return a nil miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = hit %v, err %v, want miss", hit, err)
	}

	want := []byte("<svg/>")
	if err := c.Set(ctx, "k", want, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get(k) = hit %v, err %v, want hit", hit, err)
	}
	if string(got) != string(want) {
		t.Errorf("Get(k) = %q, want %q", got, want)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}

	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("Get(bad) = hit %v, err %v, want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheConcurrentSetGet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)

	payloads := [][]byte{
		bytes.Repeat([]byte("a"), 64<<10),
		bytes.Repeat([]byte("b"), 64<<10),
	}
	if err := c.Set(ctx, "k", payloads[0], time.Hour); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				if err := c.Set(ctx, "k", payloads[(w+i)%2], time.Hour); err != nil {
					errs <- "Set: " + err.Error()
					return
				}
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				got, hit, err := c.Get(ctx, "k")
				if err != nil || !hit {
					errs <- fmt.Sprintf("Get = hit %v, err %v, want hit", hit, err)
					return
				}
				if !bytes.Equal(got, payloads[0]) && !bytes.Equal(got, payloads[1]) {
					errs <- "Get returned a torn entry"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}

	tmp, _ := filepath.Glob(filepath.Join(dir, "*", "*.tmp"))
	if len(tmp) != 0 {
		t.Errorf("temporary files left behind: %v", tmp)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}
	keep := filepath.Join(dir, "README")
	if err := os.WriteFile(keep, []byte("notes"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get after Clear should miss")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("Clear removed unrelated file: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("test"))
	h2 := Hash([]byte("test"))
	h3 := Hash([]byte("different"))

	if h1 != h2 {
		t.Error("same input should produce same hash")
	}
	if h1 == h3 {
		t.Error("different input should produce different hash")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
}

func TestRenderKey(t *testing.T) {
	doc := []byte(`[layout]`)
	base := RenderKeyOpts{Syntax: "toml", Formats: []string{"svg", "json"}, Scale: 2}

	k1 := RenderKey(doc, base)
	if len(k1) != len(KeyPrefix)+1+64 || k1[:len(KeyPrefix)+1] != KeyPrefix+":" {
		t.Errorf("RenderKey() = %q, want %s:<sha256>", k1, KeyPrefix)
	}

	reordered := base
	reordered.Formats = []string{"json", "svg"}
	if RenderKey(doc, reordered) != k1 {
		t.Error("format order should not change the key")
	}

	tests := []struct {
		name string
		doc  []byte
		opts RenderKeyOpts
	}{
		{"document", []byte(`[layout] `), base},
		{"syntax", doc, RenderKeyOpts{Syntax: "yaml", Formats: base.Formats, Scale: 2}},
		{"formats", doc, RenderKeyOpts{Syntax: "toml", Formats: []string{"svg"}, Scale: 2}},
		{"debug", doc, RenderKeyOpts{Syntax: "toml", Formats: base.Formats, Scale: 2, Debug: true}},
		{"scale", doc, RenderKeyOpts{Syntax: "toml", Formats: base.Formats, Scale: 1}},
		{"style", doc, RenderKeyOpts{Syntax: "toml", Formats: base.Formats, Scale: 2, Style: "blueprint"}},
	}
	for _, tt := range tests {
		if RenderKey(tt.doc, tt.opts) == k1 {
			t.Errorf("changing %s should change the key", tt.name)
		}
	}
	if base.Formats[0] != "svg" {
		t.Error("RenderKey mutated caller's format slice")
	}
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("SLIDEGRID_TEST_REDIS_URL")
	if url == "" {
		t.Skip("SLIDEGRID_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisConfig{URL: url, Prefix: "slidegrid-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()
	defer c.Clear(ctx)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("Get(k) = hit %v, err %v, want miss", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(got) != "v" {
		t.Errorf("Get(k) = %q, %v, %v, want \"v\", true, nil", got, hit, err)
	}
	n, err := c.Clear(ctx)
	if err != nil || n != 1 {
		t.Errorf("Clear() = %d, %v, want 1, nil", n, err)
	}
}
