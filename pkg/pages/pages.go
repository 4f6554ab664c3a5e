package pages

import (
	"sort"

	"github.com/pluqqy/blockpad/pkg/models"
)

// Get returns a copy of a built-in page by slug
func Get(slug string) (*models.Page, bool) {
	for _, p := range builtin() {
		if p.Slug == slug {
			page := p
			page.Blocks = models.CloneBlocks(p.Blocks)
			return &page, true
		}
	}
	return nil, false
}

// All returns every built-in page sorted by slug
func All() []models.Page {
	out := builtin()
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Slugs returns the built-in page slugs sorted
func Slugs() []string {
	all := All()
	out := make([]string, len(all))
	for i, p := range all {
		out[i] = p.Slug
	}
	return out
}

func builtin() []models.Page {
	return []models.Page{
		gettingStarted(),
		goals(),
		llmGuide(),
		readingList(),
		tasks(),
		todoPlanner(),
		travelPlans(),
		writingGuide(),
	}
}

func bullet(id, content string) models.Block {
	return models.Block{ID: id, Type: models.BlockBulletedList, Content: content}
}

func todo(id, content string) models.Block {
	return models.Block{ID: id, Type: models.BlockToDo, Content: content}
}

func heading(id, content string) models.Block {
	return models.Block{ID: id, Type: models.BlockHeading, Content: content}
}

func para(id, content string) models.Block {
	return models.Block{ID: id, Type: models.BlockParagraph, Content: content}
}

func title(content string) models.Block {
	return models.Block{ID: "title", Type: models.BlockTitle, Content: content}
}
