package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestKeys_DistinctNamespaces(t *testing.T) {
	if FetchKey("x") == FactCheckKey("x") {
		t.Error("Expected fetch and fact-check keys to differ for the same input")
	}
	if FetchKey("a") == FetchKey("b") {
		t.Error("Expected different inputs to hash differently")
	}
	if FetchKey("a") != FetchKey("a") {
		t.Error("Expected keys to be deterministic")
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("value")) {
		t.Errorf("Expected hit with stored value, got %q found=%v", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected miss after clear")
	}
}

func TestDiskCache_SetGet(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("payload")) {
		t.Errorf("Expected hit with stored value, got %q found=%v", got, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("payload"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestDiskCache_DeleteMissing(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Delete("never-set"); err != nil {
		t.Errorf("Expected deleting a missing key to succeed, got %v", err)
	}
}

func TestLayeredCache_PromotesFromDisk(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	// Write through the disk layer only, simulating a cold process start
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := layered.Get("k")
	if !found || !bytes.Equal(got, []byte("v")) {
		t.Fatalf("Expected disk hit through the layered cache, got %q found=%v", got, found)
	}

	// Second read should be served from memory even if disk is cleared
	if err := disk.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := layered.Get("k"); !found {
		t.Error("Expected promoted entry to survive in memory")
	}
}

func TestLayeredCache_SetBothLayers(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := layered.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	disk := NewDiskCache(dir, time.Minute)
	if _, found := disk.Get("k"); !found {
		t.Error("Expected the disk layer to hold the entry")
	}
}
