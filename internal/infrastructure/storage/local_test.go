package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/talenthub/accounts-api/internal/core/ports"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	return store
}

func TestLocalStore_SaveAndRemove(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.Save(context.Background(), &ports.Attachment{
		Filename:    "photo.PNG",
		ContentType: "image/png",
		Size:        4,
		Content:     strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasPrefix(ref, "/uploads/") {
		t.Fatalf("reference missing /uploads/ prefix: %s", ref)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Fatalf("extension not preserved lower-cased: %s", ref)
	}

	path := filepath.Join(store.Dir(), strings.TrimPrefix(ref, "/uploads/"))
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(content) != "data" {
		t.Fatalf("stored content mismatch: %q", content)
	}

	if err := store.Remove(context.Background(), ref); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present after Remove")
	}
}

func TestLocalStore_UniqueNames(t *testing.T) {
	store := newTestStore(t)

	refs := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		ref, err := store.Save(context.Background(), &ports.Attachment{
			Filename: "same-name.pdf",
			Size:     1,
			Content:  strings.NewReader("x"),
		})
		if err != nil {
			t.Fatalf("Save %d returned error: %v", i, err)
		}
		if _, dup := refs[ref]; dup {
			t.Fatalf("duplicate reference generated: %s", ref)
		}
		refs[ref] = struct{}{}
	}
}

func TestLocalStore_RemoveIgnoresForeignRefs(t *testing.T) {
	store := newTestStore(t)

	for _, ref := range []string{"", "/etc/passwd", "/uploads/../escape", "/uploads/missing.png"} {
		if err := store.Remove(context.Background(), ref); err != nil {
			t.Fatalf("Remove(%q) returned error: %v", ref, err)
		}
	}
}

func TestSafeExt(t *testing.T) {
	cases := map[string]string{
		"cv.pdf":                    ".pdf",
		"photo.JPEG":                ".jpeg",
		"noext":                     "",
		"weird.reallylongextension": "",
	}
	for in, want := range cases {
		if got := safeExt(in); got != want {
			t.Fatalf("safeExt(%q) = %q, want %q", in, got, want)
		}
	}
}
