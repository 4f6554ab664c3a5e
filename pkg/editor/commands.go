package editor

import "github.com/pluqqy/blockpad/pkg/models"

// SlashCommand is one entry of the block type menu opened by "/"
type SlashCommand struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Type        models.BlockType
}

// Commands is the fixed catalog in display and navigation order
var Commands = []SlashCommand{
	{ID: "paragraph", Title: "Text", Description: "Just start writing with plain text.", Icon: "T", Type: models.BlockParagraph},
	{ID: "heading", Title: "Heading 1", Description: "Big section heading.", Icon: "#", Type: models.BlockHeading},
	{ID: "heading2", Title: "Heading 2", Description: "Medium section heading.", Icon: "#", Type: models.BlockHeading2},
	{ID: "heading3", Title: "Heading 3", Description: "Small section heading.", Icon: "#", Type: models.BlockHeading3},
	{ID: "bulleted-list", Title: "Bulleted list", Description: "Create a simple bulleted list.", Icon: "•", Type: models.BlockBulletedList},
	{ID: "numbered-list", Title: "Numbered list", Description: "Create a list with numbering.", Icon: "1.", Type: models.BlockNumberedList},
	{ID: "to-do", Title: "To-do list", Description: "Track tasks with a to-do list.", Icon: "☐", Type: models.BlockToDo},
	{ID: "quote", Title: "Quote", Description: "Capture a quote.", Icon: "\"", Type: models.BlockQuote},
	{ID: "code", Title: "Code", Description: "Capture a code snippet.", Icon: "<>", Type: models.BlockCode},
	{ID: "divider", Title: "Divider", Description: "Visually divide blocks.", Icon: "—", Type: models.BlockDivider},
}

// CommandIndex returns the catalog position of the command producing t, or -1
func CommandIndex(t models.BlockType) int {
	for i, c := range Commands {
		if c.Type == t {
			return i
		}
	}
	return -1
}
