// README: JSON knowledge base with keyword/tag retrieval. Grounds the AI planner.
package kb

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Document is one knowledge-base entry about a destination.
type Document struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	Highlights    []string `json:"highlights,omitempty"`
	EstimatedCost string   `json:"estimated_cost,omitempty"`
	DistanceKm    int      `json:"distance_km,omitempty"`
	BestFor       []string `json:"best_for,omitempty"`
}

// Engine retrieves documents by topic-tag overlap. Read-only after Load, so
// safe for concurrent sessions.
type Engine struct {
	docs []Document
}

// Load reads every *.json file under path. Each file holds either a document
// array or a single document object. An empty path loads the built-in
// development dataset.
func Load(path string) (*Engine, error) {
	if path == "" {
		return &Engine{docs: builtinDocuments}, nil
	}
	entries, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan knowledge base: %w", err)
	}
	var docs []Document
	for _, file := range entries {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		var batch []Document
		if err := json.Unmarshal(raw, &batch); err != nil {
			var single Document
			if err2 := json.Unmarshal(raw, &single); err2 != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			batch = []Document{single}
		}
		docs = append(docs, batch...)
	}
	if len(docs) == 0 {
		log.Printf("kb: no documents under %s, falling back to built-in set", path)
		docs = builtinDocuments
	}
	return &Engine{docs: docs}, nil
}

// Retrieve returns up to limit documents ranked by overlap with queryTags.
// Tag and category hits dominate; description keyword hits break ties.
// Documents with no overlap at all are excluded.
func (e *Engine) Retrieve(queryTags []string, limit int) []Document {
	type scored struct {
		doc   Document
		score int
	}
	var hits []scored
	for _, doc := range e.docs {
		s := score(doc, queryTags)
		if s > 0 {
			hits = append(hits, scored{doc, s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].doc.Name < hits[j].doc.Name
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Document, len(hits))
	for i, h := range hits {
		out[i] = h.doc
	}
	return out
}

// Find returns the document whose name matches (case-insensitive).
func (e *Engine) Find(name string) (Document, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, doc := range e.docs {
		if strings.ToLower(doc.Name) == want {
			return doc, true
		}
	}
	return Document{}, false
}

// Len reports how many documents are loaded.
func (e *Engine) Len() int { return len(e.docs) }

func score(doc Document, queryTags []string) int {
	s := 0
	desc := strings.ToLower(doc.Description)
	for _, q := range queryTags {
		q = strings.ToLower(q)
		if q == "" {
			continue
		}
		if strings.EqualFold(doc.Category, q) {
			s += 3
		}
		for _, t := range doc.Tags {
			if strings.EqualFold(t, q) {
				s += 3
				break
			}
		}
		if strings.Contains(desc, q) {
			s++
		}
	}
	return s
}
