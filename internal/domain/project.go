package domain

import (
	"fmt"
	"strings"
)

// Project represents a single portfolio entry. Projects are immutable once
// constructed; the catalog owns them and consumers only read.
type Project struct {
	ID      string    // Unique identifier across the whole catalog
	Title   string    // Display title
	Summary string    // Short description shown in lists
	Tags    []string  // Ordered technology/topic tags
	Period  Period    // Display date range
	Images  []ImageRef
	Videos  []VideoRef
	Links   []Link

	// Localized variants keyed by BCP 47 tag (e.g. "pt-BR"). Missing
	// locales fall back to the base Title/Summary.
	Localized map[string]Text
}

// Text holds the localizable fields of a project.
type Text struct {
	Title   string
	Summary string
}

// Period is a display date range (e.g. "2021" – "2023"). End empty means
// ongoing.
type Period struct {
	Start string
	End   string
}

// ImageRef describes a gallery image.
type ImageRef struct {
	Path    string // Relative path or URL
	Caption string
	Width   int
	Height  int
}

// VideoRef describes an optional project video.
type VideoRef struct {
	Path    string
	Caption string
}

// Link is an external reference (repo, live site).
type Link struct {
	Label string
	URL   string
}

// Page is one slice of the catalog plus the session-stable total count.
type Page struct {
	Items      []Project
	TotalCount int
}

// TitleIn returns the project title for the given locale, falling back to
// the base title when no localization exists.
func (p Project) TitleIn(locale string) string {
	if t, ok := p.Localized[locale]; ok && t.Title != "" {
		return t.Title
	}
	return p.Title
}

// SummaryIn returns the project summary for the given locale.
func (p Project) SummaryIn(locale string) string {
	if t, ok := p.Localized[locale]; ok && t.Summary != "" {
		return t.Summary
	}
	return p.Summary
}

// FormattedPeriod renders the date range for display.
func (p Project) FormattedPeriod() string {
	if p.Period.Start == "" {
		return ""
	}
	if p.Period.End == "" {
		return p.Period.Start + " – present"
	}
	if p.Period.End == p.Period.Start {
		return p.Period.Start
	}
	return p.Period.Start + " – " + p.Period.End
}

// TagLine renders the tag list for display.
func (p Project) TagLine() string {
	return strings.Join(p.Tags, " · ")
}

// ImageCount returns the number of gallery images.
func (p Project) ImageCount() int {
	return len(p.Images)
}

// HasMedia reports whether the project carries any images or videos.
func (p Project) HasMedia() bool {
	return len(p.Images) > 0 || len(p.Videos) > 0
}

// ImageLabel renders a "3/12" style position indicator for image i.
func (p Project) ImageLabel(i int) string {
	if i < 0 || i >= len(p.Images) {
		return ""
	}
	return fmt.Sprintf("%d/%d", i+1, len(p.Images))
}
