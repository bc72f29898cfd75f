package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmelani/vitrine/internal/domain"
)

// Catalog is a static, in-memory project source. The backing slice is
// ordered and never mutated after construction, so reads are deterministic
// and safe from any number of goroutines.
type Catalog struct {
	projects []domain.Project
	logger   *slog.Logger
}

// New creates a catalog over the given projects.
func New(projects []domain.Project, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{projects: projects, logger: logger}
}

// GetPage returns the 1-based page of the given size. A page past the end
// yields an empty slice and the true total count. Locale selects localized
// text fields without changing ordering, identifiers, or counts.
func (c *Catalog) GetPage(ctx context.Context, page, pageSize int, locale string) (domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return domain.Page{}, err
	}
	if page < 1 || pageSize < 1 {
		return domain.Page{}, fmt.Errorf("%w: page=%d pageSize=%d", domain.ErrInvalidPage, page, pageSize)
	}

	total := len(c.projects)
	start := (page - 1) * pageSize
	if start >= total {
		return domain.Page{Items: []domain.Project{}, TotalCount: total}, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]domain.Project, end-start)
	copy(items, c.projects[start:end])
	if locale != "" {
		for i := range items {
			items[i].Title = items[i].TitleIn(locale)
			items[i].Summary = items[i].SummaryIn(locale)
		}
	}

	c.logger.Debug("catalog page served", "page", page, "size", pageSize, "returned", len(items), "total", total)
	return domain.Page{Items: items, TotalCount: total}, nil
}

// Len returns the total number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}
