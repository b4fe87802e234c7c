package categories

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMatchClassifiesByExtension(t *testing.T) {
	m := Default()

	cases := []struct {
		name     string
		category string
		ok       bool
	}{
		{"photo.jpg", "Images", true},
		{"PHOTO.JPG", "Images", true},
		{"report.PDF", "Documents", true},
		{"archive.tar", "Archives", true},
		{"main.py", "Code", true},
		{"installer.deb", "Executables", true},
		{"noextension", "", false},
		{".bashrc", "", false},
		{"trailing.", "", false},
		{"unknown.xyz", "", false},
	}
	for _, tc := range cases {
		category, ok := m.Match(tc.name)
		if ok != tc.ok || category != tc.category {
			t.Fatalf("Match(%q) = %q, %v; want %q, %v", tc.name, category, ok, tc.category, tc.ok)
		}
	}
}

func TestMatchFirstCategoryWins(t *testing.T) {
	m := New()
	m.Add("First", ".dat")
	m.Add("Second", ".dat")

	category, ok := m.Match("dump.dat")
	if !ok || category != "First" {
		t.Fatalf("expected First to win, got %q, %v", category, ok)
	}
}

func TestAddNormalizesExtensions(t *testing.T) {
	m := New()
	added := m.Add("Media", "JPG", ".png", " .GIF ", ".png", "", ".")
	if added != 3 {
		t.Fatalf("expected 3 extensions added, got %d", added)
	}

	exts, ok := m.Extensions("Media")
	if !ok {
		t.Fatal("expected Media category")
	}
	want := []string{".jpg", ".png", ".gif"}
	if len(exts) != len(want) {
		t.Fatalf("unexpected extensions: %v", exts)
	}
	for i := range want {
		if exts[i] != want[i] {
			t.Fatalf("extension %d: got %q want %q", i, exts[i], want[i])
		}
	}
}

func TestAddKeepsCategoryPosition(t *testing.T) {
	m := New()
	m.Add("Alpha", ".a")
	m.Add("Beta", ".b")
	m.Add("Alpha", ".aa")

	names := m.Names()
	if len(names) != 2 || names[0] != "Alpha" || names[1] != "Beta" {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestRemoveReindexes(t *testing.T) {
	m := New()
	m.Add("Alpha", ".a")
	m.Add("Beta", ".b")
	m.Add("Gamma", ".c")

	if !m.Remove("Beta") {
		t.Fatal("expected Beta to be removed")
	}
	if m.Remove("Beta") {
		t.Fatal("expected second removal to report false")
	}

	names := m.Names()
	if len(names) != 2 || names[0] != "Alpha" || names[1] != "Gamma" {
		t.Fatalf("unexpected order after removal: %v", names)
	}
	if category, ok := m.Match("x.c"); !ok || category != "Gamma" {
		t.Fatalf("index stale after removal: got %q, %v", category, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := New()
	original.Add("Docs", ".txt")

	clone := original.Clone()
	clone.Add("Docs", ".md")
	clone.Add("Extra", ".x")

	if exts, _ := original.Extensions("Docs"); len(exts) != 1 {
		t.Fatalf("clone mutated original extensions: %v", exts)
	}
	if original.Has("Extra") {
		t.Fatal("clone mutated original categories")
	}
}

func TestJSONRoundTripPreservesOrder(t *testing.T) {
	m := New()
	m.Add("Zed", ".z")
	m.Add("Alpha", ".a", ".aa")
	m.Add("Mid", ".m")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	if strings.Index(text, "Zed") > strings.Index(text, "Alpha") {
		t.Fatalf("document order lost: %s", text)
	}

	decoded := New()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	names := decoded.Names()
	if len(names) != 3 || names[0] != "Zed" || names[1] != "Alpha" || names[2] != "Mid" {
		t.Fatalf("unexpected order after round trip: %v", names)
	}
	if exts, _ := decoded.Extensions("Alpha"); len(exts) != 2 || exts[0] != ".a" {
		t.Fatalf("unexpected Alpha extensions: %v", exts)
	}
}

func TestUnmarshalRejectsWrongShape(t *testing.T) {
	docs := []string{
		`["Images"]`,
		`{"Images": ".jpg"}`,
		`{"Images": {"ext": ".jpg"}}`,
		`42`,
	}
	for _, doc := range docs {
		m := New()
		if err := json.Unmarshal([]byte(doc), m); err == nil {
			t.Fatalf("expected error for %s", doc)
		}
	}
}

func TestDefaultTableOrder(t *testing.T) {
	m := Default()
	names := m.Names()
	want := []string{
		"Images", "Documents", "Spreadsheets", "Presentations",
		"Videos", "Audio", "Archives", "Code", "Executables",
	}
	if len(names) != len(want) {
		t.Fatalf("unexpected category count: %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("category %d: got %q want %q", i, names[i], want[i])
		}
	}
}
