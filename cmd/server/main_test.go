package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Skufu/multidisease/internal/config"
)

func TestDetectStaticRoot(t *testing.T) {
	// cmd/server is two levels below the repository root holding web/.
	root := detectStaticRoot()
	if !fileExists(filepath.Join(root, "index.html")) {
		t.Fatalf("expected index.html under %s", root)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !fileExists(path) {
		t.Fatal("expected file to exist")
	}
	if fileExists(dir) {
		t.Fatal("directories are not files")
	}
	if fileExists(filepath.Join(dir, "missing.html")) {
		t.Fatal("expected missing file")
	}
}

func TestOpenHistoryDisabled(t *testing.T) {
	s, err := openHistory(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != nil {
		t.Fatalf("expected no store, got %T", s)
	}
}

func TestOpenHistorySQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := openHistory(context.Background(), &config.Config{HistorySQLitePath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
