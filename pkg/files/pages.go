package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/blockpad/pkg/models"
	"github.com/pluqqy/blockpad/pkg/pages"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrInvalidPage  = errors.New("invalid page")
)

// ReadPage parses a page file. The slug defaults to the file name.
func ReadPage(path string) (*models.Page, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", path, err)
	}

	page, err := ParsePage(content)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", path, err)
	}
	if page.Slug == "" {
		page.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return page, nil
}

// ParsePage decodes and validates page YAML
func ParsePage(content []byte) (*models.Page, error) {
	var page models.Page
	if err := yaml.Unmarshal(content, &page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	return &page, nil
}

// WritePage stores a page as YAML. It is used to seed page files; the editor
// never writes edits back.
func WritePage(path string, page *models.Page) error {
	data, err := yaml.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for page: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", path, err)
	}
	return nil
}

// ListPageFiles returns the page files in the project pages directory
func ListPageFiles() ([]string, error) {
	dir := filepath.Join(ProjectDir, PagesDir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	var out []string
	for _, entry := range entries {
		if !entry.IsDir() && (strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml")) {
			out = append(out, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// ProjectPage is a page loaded from the project pages directory
type ProjectPage struct {
	Path string
	Page *models.Page
}

// LoadProjectPages reads every project page file and keys it by slug, the
// YAML slug when set and the file name otherwise. When two files share a
// slug the later path wins. Files that fail to load are returned in skipped
// by path.
func LoadProjectPages() (bySlug map[string]ProjectPage, skipped map[string]error, err error) {
	paths, err := ListPageFiles()
	if err != nil {
		return nil, nil, err
	}

	bySlug = make(map[string]ProjectPage, len(paths))
	skipped = make(map[string]error)
	for _, path := range paths {
		page, err := ReadPage(path)
		if err != nil {
			skipped[path] = err
			continue
		}
		bySlug[page.Slug] = ProjectPage{Path: path, Page: page}
	}
	return bySlug, skipped, nil
}

// ResolvePage finds a page by reference: an existing file path, the slug of
// a project page, or a built-in page slug, in that order. A project file
// named after ref that fails to load is reported rather than falling back
// to a built-in.
func ResolvePage(ref string) (*models.Page, string, error) {
	if ref == "" {
		return nil, "", fmt.Errorf("%w: empty reference", ErrPageNotFound)
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		page, err := ReadPage(ref)
		return page, ref, err
	}

	project, skipped, err := LoadProjectPages()
	if err != nil {
		return nil, "", err
	}
	if p, ok := project[ref]; ok {
		return p.Page, p.Path, nil
	}
	for path, err := range skipped {
		if strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) == ref {
			return nil, path, err
		}
	}

	if page, ok := pages.Get(ref); ok {
		return page, "", nil
	}

	return nil, "", fmt.Errorf("%w: %s", ErrPageNotFound, ref)
}
