package catalog_test

import (
	"context"
	"testing"

	"github.com/dmelani/vitrine/internal/catalog"
	"github.com/dmelani/vitrine/internal/domain"
	"github.com/stretchr/testify/require"
)

func testProjects(n int) []domain.Project {
	projects := make([]domain.Project, n)
	for i := range projects {
		projects[i] = domain.Project{
			ID:      string(rune('a' + i)),
			Title:   "Project " + string(rune('A'+i)),
			Summary: "summary",
			Localized: map[string]domain.Text{
				"pt-BR": {Title: "Projeto " + string(rune('A'+i))},
			},
		}
	}
	return projects
}

func TestCatalog_GetPage(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(testProjects(18), nil)

	page, err := c.GetPage(ctx, 1, 5, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	require.Equal(t, 18, page.TotalCount)
	require.Equal(t, "a", page.Items[0].ID)

	page, err = c.GetPage(ctx, 4, 5, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 3) // Last partial page
	require.Equal(t, 18, page.TotalCount)
}

func TestCatalog_PagePastEndIsEmptyNotError(t *testing.T) {
	c := catalog.New(testProjects(6), nil)

	page, err := c.GetPage(context.Background(), 9, 5, "")
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 6, page.TotalCount)
}

func TestCatalog_InvalidInputs(t *testing.T) {
	c := catalog.New(testProjects(3), nil)

	_, err := c.GetPage(context.Background(), 0, 5, "")
	require.ErrorIs(t, err, domain.ErrInvalidPage)

	_, err = c.GetPage(context.Background(), 1, 0, "")
	require.ErrorIs(t, err, domain.ErrInvalidPage)
}

func TestCatalog_Deterministic(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(testProjects(10), nil)

	first, err := c.GetPage(ctx, 2, 3, "")
	require.NoError(t, err)
	second, err := c.GetPage(ctx, 2, 3, "")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCatalog_LocaleSelectsTextOnly(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(testProjects(4), nil)

	base, err := c.GetPage(ctx, 1, 4, "")
	require.NoError(t, err)
	localized, err := c.GetPage(ctx, 1, 4, "pt-BR")
	require.NoError(t, err)

	require.Equal(t, base.TotalCount, localized.TotalCount)
	require.Len(t, localized.Items, len(base.Items))
	for i := range base.Items {
		require.Equal(t, base.Items[i].ID, localized.Items[i].ID)
	}
	require.Equal(t, "Projeto A", localized.Items[0].Title)
}

func TestLoadEmbedded(t *testing.T) {
	projects, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	require.NotEmpty(t, projects)

	seen := make(map[string]bool)
	for _, p := range projects {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}
