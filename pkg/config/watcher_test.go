package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apartment.yaml")
	if err := os.WriteFile(path, []byte("chair:\n  speed: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchApartmentConfig(path)
	if err != nil {
		t.Fatalf("WatchApartmentConfig() error: %v", err)
	}
	defer w.Close()

	// 同目录下的其他文件不触发重新加载
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("chair:\n  speed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Chair.Speed == 2 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apartment.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchApartmentConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

// TestWatcher_DebouncesBurst 连续多次保存只重新加载最后一次
func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apartment.yaml")
	if err := os.WriteFile(path, []byte("chair:\n  speed: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchApartmentConfig(path)
	if err != nil {
		t.Fatalf("WatchApartmentConfig() error: %v", err)
	}
	defer w.Close()

	for speed := 2; speed <= 6; speed++ {
		data := []byte("chair:\n  speed: " + strconv.Itoa(speed) + "\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case cfg := <-w.Updates():
		if cfg.Chair.Speed != 6 {
			t.Errorf("first reload chair speed = %v, want 6 (the last write)", cfg.Chair.Speed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}

	select {
	case cfg := <-w.Updates():
		t.Errorf("unexpected second reload (chair speed %v)", cfg.Chair.Speed)
	case <-time.After(3 * reloadDebounce):
	}
}
