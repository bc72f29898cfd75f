package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/dmelani/vitrine/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var embeddedProjects []byte

// yamlProject mirrors the on-disk catalog format.
type yamlProject struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Period  struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"period"`
	Images []struct {
		Path    string `yaml:"path"`
		Caption string `yaml:"caption"`
		Width   int    `yaml:"width"`
		Height  int    `yaml:"height"`
	} `yaml:"images"`
	Videos []struct {
		Path    string `yaml:"path"`
		Caption string `yaml:"caption"`
	} `yaml:"videos"`
	Links []struct {
		Label string `yaml:"label"`
		URL   string `yaml:"url"`
	} `yaml:"links"`
	Localized map[string]struct {
		Title   string `yaml:"title"`
		Summary string `yaml:"summary"`
	} `yaml:"localized"`
}

type yamlCatalog struct {
	Projects []yamlProject `yaml:"projects"`
}

// LoadEmbedded parses the catalog compiled into the binary.
func LoadEmbedded() ([]domain.Project, error) {
	return parse(embeddedProjects)
}

// LoadFile parses a catalog from an external YAML file, overriding the
// embedded data.
func LoadFile(path string) ([]domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]domain.Project, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := make(map[string]bool, len(raw.Projects))
	projects := make([]domain.Project, 0, len(raw.Projects))
	for _, yp := range raw.Projects {
		if yp.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", yp.Title)
		}
		if seen[yp.ID] {
			return nil, fmt.Errorf("duplicate project id %q", yp.ID)
		}
		seen[yp.ID] = true
		projects = append(projects, toDomain(yp))
	}
	return projects, nil
}

func toDomain(yp yamlProject) domain.Project {
	p := domain.Project{
		ID:      yp.ID,
		Title:   yp.Title,
		Summary: yp.Summary,
		Tags:    yp.Tags,
		Period:  domain.Period{Start: yp.Period.Start, End: yp.Period.End},
	}
	for _, img := range yp.Images {
		p.Images = append(p.Images, domain.ImageRef{
			Path:    img.Path,
			Caption: img.Caption,
			Width:   img.Width,
			Height:  img.Height,
		})
	}
	for _, v := range yp.Videos {
		p.Videos = append(p.Videos, domain.VideoRef{Path: v.Path, Caption: v.Caption})
	}
	for _, l := range yp.Links {
		p.Links = append(p.Links, domain.Link{Label: l.Label, URL: l.URL})
	}
	if len(yp.Localized) > 0 {
		p.Localized = make(map[string]domain.Text, len(yp.Localized))
		for tag, t := range yp.Localized {
			p.Localized[tag] = domain.Text{Title: t.Title, Summary: t.Summary}
		}
	}
	return p
}
