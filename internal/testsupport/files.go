package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills the target path with size bytes of a rolling byte pattern,
// so a truncated or block-shuffled copy never hashes like the source. A
// size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	buf := make([]byte, 32*1024)
	var written int64
	for written < size {
		n := int64(len(buf))
		if remaining := size - written; remaining < n {
			n = remaining
		}
		for i := int64(0); i < n; i++ {
			buf[i] = byte(written + i)
		}
		if _, err := f.Write(buf[:n]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		written += n
	}
}

// SeedFiles creates one small file per name directly under dir. Each file's
// content is its own name, so moves are easy to verify byte-for-byte.
func SeedFiles(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}
}
