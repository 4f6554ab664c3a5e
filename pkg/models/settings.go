package models

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings represents the application configuration
type Settings struct {
	Editor EditorSettings `yaml:"editor"`
	UI     UISettings     `yaml:"ui"`
	Log    LogSettings    `yaml:"log"`
}

// EditorSettings controls the block editor
type EditorSettings struct {
	Width         int    `yaml:"width"` // 0 means use the terminal width
	ShowHelp      bool   `yaml:"show_help"`
	ConfirmDelete bool   `yaml:"confirm_delete"`
	Placeholder   string `yaml:"placeholder"`
}

// UISettings controls UI preferences
type UISettings struct {
	Mouse       bool   `yaml:"mouse"`
	DefaultPage string `yaml:"default_page"`
}

// LogSettings controls the debug log
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // zerolog level name
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			Width:         0,
			ShowHelp:      true,
			ConfirmDelete: true,
			Placeholder:   "Type '/' for commands",
		},
		UI: UISettings{
			Mouse:       true,
			DefaultPage: "getting-started",
		},
		Log: LogSettings{
			Path:  "",
			Level: "info",
		},
	}
}

// Validate checks value ranges
func (s *Settings) Validate() error {
	err := validation.ValidateStruct(&s.Editor,
		validation.Field(&s.Editor.Width, validation.Min(0), validation.Max(400)),
	)
	if err == nil {
		err = validation.ValidateStruct(&s.Log,
			validation.Field(&s.Log.Level, validation.In("trace", "debug", "info", "warn", "error", "disabled")),
		)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
