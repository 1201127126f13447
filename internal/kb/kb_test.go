package kb

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRetrieveRanksByTagOverlap(t *testing.T) {
	eng, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	docs := eng.Retrieve([]string{"hiking"}, 3)
	if len(docs) == 0 {
		t.Fatal("expected hiking documents from the built-in set")
	}
	for _, d := range docs {
		if !hasTag(d, "hiking") {
			t.Errorf("document %s retrieved for hiking without the tag", d.Name)
		}
	}

	beach := eng.Retrieve([]string{"beach"}, 10)
	for _, d := range beach {
		if d.Category != "beach" && !hasTag(d, "beach") {
			t.Errorf("document %s retrieved for beach with neither tag nor category", d.Name)
		}
	}
}

func TestRetrieveNoOverlapIsEmpty(t *testing.T) {
	eng, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if docs := eng.Retrieve([]string{"skiing"}, 5); len(docs) != 0 {
		t.Errorf("expected no documents for skiing, got %d", len(docs))
	}
	if docs := eng.Retrieve(nil, 5); len(docs) != 0 {
		t.Errorf("expected no documents for empty query, got %d", len(docs))
	}
}

func TestFind(t *testing.T) {
	eng, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	doc, ok := eng.Find("  lonavala ")
	if !ok || doc.Name != "Lonavala" {
		t.Fatalf("Find(lonavala) = %v, %v", doc.Name, ok)
	}
	if _, ok := eng.Find("atlantis"); ok {
		t.Error("Find(atlantis) should miss")
	}
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"name":"Kaas Plateau","category":"scenic","tags":["hiking","family"],"description":"Valley of flowers after the monsoon."}]`
	if err := os.WriteFile(filepath.Join(dir, "places.json"), []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
	eng, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if eng.Len() != 1 {
		t.Fatalf("loaded %d documents, want 1", eng.Len())
	}
	if _, ok := eng.Find("Kaas Plateau"); !ok {
		t.Error("Kaas Plateau missing after load")
	}
}

func hasTag(d Document, tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
