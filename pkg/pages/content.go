package pages

import "github.com/pluqqy/blockpad/pkg/models"

func gettingStarted() models.Page {
	return models.Page{
		Slug:       "getting-started",
		Title:      "Getting Started",
		Icon:       "📚",
		LastEdited: "May 1",
		Blocks: []models.Block{
			title("Getting Started"),
			para("intro", "Welcome to your new workspace. This is your getting started guide."),
			heading("quick-start", "Quick Start"),
			bullet("qs-1", "Explore the sidebar navigation to find different features"),
			bullet("qs-2", "Use the block editor to create rich content"),
			bullet("qs-3", "Try the AI assistant for writing help"),
			bullet("qs-4", "Organize your thoughts with the todo planner"),
			bullet("qs-5", "Set goals and track your progress"),
			heading("tips", "Tips"),
			para("tips-body", "This workspace is designed to help you organize your thoughts, plan your projects, and enhance your productivity. Each section has specific functionality to support different aspects of your work and personal development."),
		},
	}
}

func goals() models.Page {
	return models.Page{
		Slug:  "goals",
		Title: "Goals",
		Icon:  "🎯",
		Blocks: []models.Block{
			title("🎯 Goals & Objectives"),
			para("intro", "Track your personal and professional goals. Set clear objectives and monitor your progress towards achieving them."),
			heading("current-goals", "Current Goals"),
			bullet("goal-1", "Complete the web app project by end of month"),
			bullet("goal-2", "Learn advanced TypeScript patterns"),
			bullet("goal-3", "Improve code organization and architecture skills"),
		},
	}
}

func llmGuide() models.Page {
	return models.Page{
		Slug:       "llm",
		Title:      "LLM Guide",
		Icon:       "🧬",
		LastEdited: "Dec 18",
		Blocks: []models.Block{
			title("What is a Large Language Model?"),
			para("intro", "A Large Language Model (LLM) is an AI system trained to understand and generate human-like text. It predicts the next word in a sentence based on what came before — this simple mechanism enables surprisingly powerful behavior."),
			heading("how-work-heading", "How Do They Work?"),
			heading("training-heading", "1. Training on Massive Text Data"),
			bullet("training-1", "LLMs are trained on billions or trillions of words (from books, websites, articles, etc.)."),
			bullet("training-2", "The model learns grammar, facts, reasoning, and even writing styles from this data."),
			heading("token-heading", "2. Token Prediction"),
			bullet("token-1", "Text is broken into tokens (pieces of words)."),
			bullet("token-2", "The model learns to predict the next token in a sequence."),
			bullet("token-3", `Example: Input: "The cat sat on the" → Prediction: "mat"`),
			heading("transformer-heading", "3. Transformers (Core Architecture)"),
			bullet("transformer-1", "Uses attention mechanisms to understand context across long text."),
			bullet("transformer-2", "Can focus on relevant words from earlier in the text, not just the most recent ones."),
		},
	}
}

func readingList() models.Page {
	return models.Page{
		Slug:  "reading-list",
		Title: "Reading List",
		Icon:  "📖",
		Blocks: []models.Block{
			title("Reading List"),
			para("intro", "Track books and articles you want to read or have completed."),
			heading("reading", "Currently Reading"),
			bullet("reading-1", "The Pragmatic Programmer, by David Thomas & Andrew Hunt (75% complete)"),
			heading("want", "Want to Read"),
			{ID: "want-1", Type: models.BlockNumberedList, Content: "Clean Architecture, by Robert C. Martin"},
			{ID: "want-2", Type: models.BlockNumberedList, Content: "Designing Data-Intensive Applications, by Martin Kleppmann"},
		},
	}
}

func tasks() models.Page {
	return models.Page{
		Slug:  "tasks",
		Title: "Tasks",
		Icon:  "✅",
		Blocks: []models.Block{
			title("Tasks"),
			para("intro", "Manage your daily tasks and assignments."),
			heading("current", "Current Tasks"),
			todo("task-1", "Review project documentation"),
			todo("task-2", "Update team on progress"),
			todo("task-3", "Plan next week's priorities"),
			{ID: "split", Type: models.BlockDivider, Content: models.DividerContent},
			heading("completed", "Completed"),
			{ID: "done-1", Type: models.BlockQuote, Content: "Organize workspace cleanup"},
		},
	}
}

func todoPlanner() models.Page {
	return models.Page{
		Slug:  "todo-planner",
		Title: "To-Do Planner",
		Icon:  "📝",
		Blocks: []models.Block{
			title("📝 To-Do List & Planner"),
			para("intro", "Organize your tasks and plan your day effectively. Keep track of your priorities and deadlines."),
			heading("today-tasks", "Today's Tasks"),
			bullet("task-1", "Review and organize project codebase"),
			bullet("task-2", "Update documentation"),
			bullet("task-3", "Test new features"),
			heading("upcoming-tasks", "This Week"),
			bullet("week-task-1", "Plan next sprint features"),
			bullet("week-task-2", "Schedule team meetings"),
		},
	}
}

func travelPlans() models.Page {
	return models.Page{
		Slug:  "travel-plans",
		Title: "Travel Plans",
		Icon:  "✈️",
		Blocks: []models.Block{
			title("✈️ Travel Plans 2025"),
			para("intro", "Plan your adventures and trips for the upcoming year. Keep track of destinations, dates, and important details."),
			heading("upcoming-trips", "Upcoming Trips"),
			bullet("trip-1", "Spring Break - Beach destination (March 2025)"),
			bullet("trip-2", "Summer Vacation - Europe tour (July 2025)"),
			bullet("trip-3", "Fall Conference - Tech conference in San Francisco (October 2025)"),
			heading("planning-notes", "Planning Notes"),
			bullet("note-1", "Book flights early for better prices"),
			bullet("note-2", "Research local customs and weather"),
		},
	}
}

func writingGuide() models.Page {
	return models.Page{
		Slug:  "writi-guide",
		Title: "Writing Guide",
		Icon:  "✍️",
		Blocks: []models.Block{
			title("✍️ Writing Guide"),
			para("intro", "Master the art of effective writing. Learn techniques, tips, and best practices for clear communication."),
			heading("writing-principles", "Core Writing Principles"),
			bullet("principle-1", "Clarity: Write clearly and concisely"),
			bullet("principle-2", "Structure: Organize your thoughts logically"),
			bullet("principle-3", "Purpose: Know your audience and objective"),
			heading("writing-process", "The Writing Process"),
			bullet("process-1", "Plan: Outline your main points"),
			bullet("process-2", "Draft: Write your first version"),
			bullet("process-3", "Revise: Edit and improve your work"),
		},
	}
}
