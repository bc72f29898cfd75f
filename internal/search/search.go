// Package search provides fuzzy matching over already-loaded projects.
// It never triggers loading; items enter the index as the loader appends
// pages.
package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/dmelani/vitrine/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Result is a ranked match into the indexed project list.
type Result struct {
	Index   int // Position in the loader's accumulated list
	Project domain.Project
	Rank    int // Lower is better
}

// Index ranks projects by title and tags. Append-only, mirroring the
// loader's accumulated list.
type Index struct {
	logger   *slog.Logger
	projects []domain.Project
	haystack []string // Pre-lowered "title tags" per project
}

// NewIndex creates an empty index.
func NewIndex(logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}
	return &Index{logger: logger}
}

// Add appends newly loaded projects to the index.
func (idx *Index) Add(projects []domain.Project) {
	for _, p := range projects {
		idx.projects = append(idx.projects, p)
		idx.haystack = append(idx.haystack, searchText(p))
	}
	idx.logger.Debug("indexed projects", "added", len(projects), "total", len(idx.projects))
}

// Reset clears the index, for when the loader re-initializes.
func (idx *Index) Reset() {
	idx.projects = nil
	idx.haystack = nil
}

// Len returns the number of indexed projects.
func (idx *Index) Len() int {
	return len(idx.projects)
}

// Search returns projects matching the query, best first. An empty query
// matches nothing.
func (idx *Index) Search(query string) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(idx.projects) == 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(query, idx.haystack)
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	results := make([]Result, len(ranks))
	for i, r := range ranks {
		results[i] = Result{
			Index:   r.OriginalIndex,
			Project: idx.projects[r.OriginalIndex],
			Rank:    r.Distance,
		}
	}
	return results
}

// FilterByTag returns the indexed projects carrying the given tag,
// preserving catalog order.
func (idx *Index) FilterByTag(tag string) []domain.Project {
	tag = strings.ToLower(tag)
	var out []domain.Project
	for _, p := range idx.projects {
		for _, t := range p.Tags {
			if strings.ToLower(t) == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func searchText(p domain.Project) string {
	parts := make([]string, 0, len(p.Tags)+1)
	parts = append(parts, p.Title)
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
