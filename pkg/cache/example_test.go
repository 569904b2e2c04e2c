package cache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/standings/pkg/cache"
)

func ExampleStore() {
	dir, _ := os.MkdirTemp("", "standings-cache")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "cache.json")

	store := cache.NewStore(path)
	_ = store.Set("greeting", "hello", time.Now().Add(time.Hour))

	// A new store over the same file sees the entry.
	var v string
	ok := cache.NewStore(path).Get("greeting", &v)
	fmt.Println(ok, v)
	// Output: true hello
}

func ExampleNextDaily() {
	now := time.Date(2026, 7, 21, 13, 0, 0, 0, time.UTC)
	fmt.Println(cache.NextDaily(now, 4))
	// Output: 2026-07-22 04:00:00 +0000 UTC
}
