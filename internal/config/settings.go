package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/ytdl-gui/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyQuality     = "max_quality"
	KeyLanguage    = "app_language"
	KeyMergeTool   = "merge_tool_path"
)

// Default values
const (
	DefaultQuality  = model.DefaultQuality
	DefaultLanguage = "system"
)

// Settings manages the user's persisted choices
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the last chosen destination, or "" if the
// user never picked one.
func (s *Settings) GetDownloadDirectory() string {
	return s.app.Preferences().String(KeyDownloadDir)
}

// SetDownloadDirectory remembers the destination directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQuality returns the last used maximum height
func (s *Settings) GetQuality() model.Quality {
	q := model.Quality(s.app.Preferences().IntWithFallback(KeyQuality, int(DefaultQuality)))
	if !q.Valid() {
		return DefaultQuality
	}
	return q
}

// SetQuality remembers the maximum height. Invalid values are ignored.
func (s *Settings) SetQuality(q model.Quality) {
	if !q.Valid() {
		return
	}
	s.app.Preferences().SetInt(KeyQuality, int(q))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMergeToolPath returns the user's ffmpeg override, empty for PATH lookup
func (s *Settings) GetMergeToolPath() string {
	return s.app.Preferences().String(KeyMergeTool)
}

// SetMergeToolPath sets the ffmpeg override
func (s *Settings) SetMergeToolPath(path string) {
	s.app.Preferences().SetString(KeyMergeTool, path)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
