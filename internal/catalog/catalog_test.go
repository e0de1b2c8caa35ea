package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalog_ReadReturnsContentVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	content := `{"categories": ["Food", "Transport"]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	c := New(path)
	got, err := c.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestCatalog_ReadSeesExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	if err := os.WriteFile(path, []byte(`["Food"]`), 0644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	c := New(path)
	if _, err := c.Read(); err != nil {
		t.Fatalf("first read: %v", err)
	}

	// Edit the file behind the catalog's back; the next read must see it.
	if err := os.WriteFile(path, []byte(`["Food", "Travel"]`), 0644); err != nil {
		t.Fatalf("rewrite document: %v", err)
	}
	got, err := c.Read()
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if string(got) != `["Food", "Travel"]` {
		t.Errorf("content = %q, want the edited document", got)
	}
}

func TestCatalog_ReadMissingFileFails(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := c.Read(); err == nil {
		t.Error("expected error for missing document")
	}
}
