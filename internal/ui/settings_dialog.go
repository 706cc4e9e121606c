package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytdl-gui/internal/config"
)

// SettingsDialog edits the persisted language and ffmpeg override
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	mergeToolEntry *widget.Entry
	languageSelect *widget.Select

	// display name -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were stored and may be nil.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  loc,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, loc, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.mergeToolEntry = widget.NewEntry()
	sd.mergeToolEntry.SetPlaceHolder(text(KeyMergeToolHint))
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseMergeTool)
	mergeToolRow := container.NewBorder(nil, nil, nil, browseBtn, sd.mergeToolEntry)

	names := make([]string, 0)
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyMergeToolPath)),
		mergeToolRow,
		widget.NewSeparator(),
		widget.NewLabel(text(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.mergeToolEntry.SetText(sd.settings.GetMergeToolPath())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseMergeTool lets the user pick the ffmpeg binary
func (sd *SettingsDialog) onBrowseMergeTool() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.mergeToolEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save stores the entered values. An empty ffmpeg path clears the override.
func (sd *SettingsDialog) save() {
	sd.settings.SetMergeToolPath(sd.mergeToolEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
