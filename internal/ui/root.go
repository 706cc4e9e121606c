package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/ytdl-gui/internal/apperrors"
	"github.com/ytget/ytdl-gui/internal/config"
	"github.com/ytget/ytdl-gui/internal/download"
	"github.com/ytget/ytdl-gui/internal/model"
	"github.com/ytget/ytdl-gui/internal/platform"
)

// RootUI represents the main window. It implements download.Presenter.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	session      *download.Session
	log          zerolog.Logger

	// reveal opens the system file manager on a finished file
	reveal func(path string) error

	bannerTitle   *canvas.Text
	locationBtn   *widget.Button
	locationLabel *widget.Label
	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	qualityLabel  *widget.Label
	qualityEntry  *widget.SelectEntry
	downloadBtn   *widget.Button
	progressLabel *widget.Label
	progressBar   *widget.ProgressBar

	downloadDir string
}

// NewRootUI creates the main window content and binds it to a download session
func NewRootUI(window fyne.Window, settings *config.Settings, starter download.Starter, logger zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		log:          logger.With().Str("component", "ui").Logger(),
		reveal:       platform.RevealInFileManager,
		downloadDir:  settings.GetDownloadDirectory(),
	}
	ui.session = download.NewSession(starter, ui, fyne.DoAndWait, logger)

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// Listen forwards worker messages to the window until ctx is done
func (ui *RootUI) Listen(ctx context.Context) {
	go ui.session.Run(ctx)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.locationBtn = widget.NewButton("", ui.onChooseLocation)
	ui.locationLabel = widget.NewLabel("")
	ui.locationLabel.Alignment = fyne.TextAlignCenter
	ui.locationLabel.Truncation = fyne.TextTruncateEllipsis

	ui.urlLabel = widget.NewLabel("")
	ui.urlEntry = widget.NewEntry()
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.qualityLabel = widget.NewLabel("")
	ui.qualityEntry = widget.NewSelectEntry(model.QualityOptions())
	ui.qualityEntry.SetText(ui.settings.GetQuality().String())

	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.progressLabel = widget.NewLabel("")
	ui.progressLabel.Alignment = fyne.TextAlignCenter
	ui.progressLabel.Wrapping = fyne.TextWrapWord
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()

	ui.refreshUITexts()

	content := container.NewVBox(
		ui.createBanner(),
		container.NewPadded(ui.locationBtn),
		ui.locationLabel,
		widget.NewSeparator(),
		ui.urlLabel,
		container.NewGridWrap(fyne.NewSize(URLEntryMinWidth, ui.urlEntry.MinSize().Height), ui.urlEntry),
		ui.qualityLabel,
		ui.qualityEntry,
		container.NewPadded(ui.downloadBtn),
		ui.progressLabel,
		ui.progressBar,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.log.Debug().Msg("UI setup completed")
}

// createBanner builds the orange header with logo and title
func (ui *RootUI) createBanner() fyne.CanvasObject {
	background := canvas.NewRectangle(BannerColor)

	ui.bannerTitle = canvas.NewText(ui.localization.GetText(KeyBannerTitle), BannerTextColor)
	ui.bannerTitle.TextSize = BannerTextSize
	ui.bannerTitle.TextStyle = fyne.TextStyle{Bold: true}

	row := container.NewHBox()
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		row.Add(img)
	} else {
		ui.log.Debug().Err(err).Msg("Logo not loaded")
	}
	row.Add(container.NewCenter(ui.bannerTitle))
	row.Add(layout.NewSpacer())

	return container.NewStack(background, container.NewPadded(row))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))
	if ui.bannerTitle != nil {
		ui.bannerTitle.Text = text(KeyBannerTitle)
		ui.bannerTitle.Refresh()
	}
	ui.locationBtn.SetText(IconFolder + " " + text(KeyChooseLocation))
	ui.updateLocationLabel()
	ui.urlLabel.SetText(text(KeyEnterURL))
	ui.urlEntry.SetPlaceHolder(text(KeyURLPlaceholder))
	ui.qualityLabel.SetText(text(KeySelectQuality))
	ui.downloadBtn.SetText(text(KeyDownload))
}

func (ui *RootUI) updateLocationLabel() {
	dir := ui.downloadDir
	if dir == "" {
		dir = ui.localization.GetText(KeyNotSelected)
	}
	ui.locationLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyLocationFormat), dir))
}

// onChooseLocation opens a folder picker starting at the last used folder or
// the user's Downloads directory.
func (ui *RootUI) onChooseLocation() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.setDownloadDir(uri.Path())
	}, ui.window)

	if start := ui.folderDialogStart(); start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			picker.SetLocation(lister)
		}
	}
	picker.Show()
}

// folderDialogStart returns the folder the picker opens in
func (ui *RootUI) folderDialogStart() string {
	if ui.downloadDir != "" {
		return ui.downloadDir
	}
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return ""
	}
	return dir
}

// setDownloadDir records the chosen destination
func (ui *RootUI) setDownloadDir(dir string) {
	ui.downloadDir = dir
	ui.settings.SetDownloadDirectory(dir)
	ui.updateLocationLabel()
	ui.log.Info().Str("dir", dir).Msg("Download location selected")
}

// selectedQuality parses the dropdown. Anything that is not a listed quality
// yields an invalid value so the request is rejected.
func (ui *RootUI) selectedQuality() model.Quality {
	q, err := model.ParseQuality(ui.qualityEntry.Text)
	if err != nil {
		return 0
	}
	return q
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	// Enter in the URL field bypasses the disabled button
	if ui.downloadBtn.Disabled() {
		ui.showError(apperrors.NewPreconditionError(apperrors.ReasonBusy, ""))
		return
	}

	quality := ui.selectedQuality()
	req := model.NewDownloadRequest(ui.urlEntry.Text, quality, ui.downloadDir)

	if err := ui.session.Start(req); err != nil {
		ui.log.Warn().Err(err).Msg("Download not started")
		ui.showError(err)
		return
	}

	ui.settings.SetQuality(quality)
	ui.log.Info().Str("url", req.URL).Stringer("quality", quality).Msg("Download started")
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// Render shows the current progress. Runs on the UI goroutine.
func (ui *RootUI) Render(state model.DownloadState) {
	if state.Status == model.RunStatusRunning {
		ui.downloadBtn.Disable()
		ui.progressBar.Show()
	}
	ui.progressBar.SetValue(state.Fraction())
	ui.progressLabel.SetText(ui.statusText(state))
}

// statusText renders the line under the download button
func (ui *RootUI) statusText(state model.DownloadState) string {
	text := ui.localization.GetText
	switch state.Status {
	case model.RunStatusSucceeded:
		return text(KeyDownloadCompleted)
	case model.RunStatusFailed:
		return text(KeyDownloadFailed)
	case model.RunStatusRunning:
		if state.Processing {
			return text(KeyProcessing)
		}
		if !state.Reported() {
			return text(KeyStarting)
		}
		return fmt.Sprintf(text(KeyProgressFormat), state.PercentText, state.Speed, state.ETA)
	}
	return ""
}

// Notify reports the outcome of a finished run
func (ui *RootUI) Notify(state model.DownloadState) {
	switch state.Status {
	case model.RunStatusSucceeded:
		ui.showSuccess(state.OutputPath)
	case model.RunStatusFailed:
		ui.showError(state.Err)
	}
}

// Restore puts the controls back to idle
func (ui *RootUI) Restore() {
	ui.downloadBtn.Enable()
	ui.progressBar.Hide()
}

// showSuccess shows the completion alert, offering to reveal the file when
// its path is known.
func (ui *RootUI) showSuccess(outputPath string) {
	text := ui.localization.GetText
	if outputPath == "" {
		dialog.ShowInformation(text(KeySuccessTitle), text(KeyDownloadCompleted), ui.window)
		return
	}

	message := widget.NewLabel(text(KeyDownloadCompleted) + "\n" + outputPath)
	message.Wrapping = fyne.TextWrapBreak

	d := dialog.NewCustomConfirm(text(KeySuccessTitle), text(KeyShowInFolder), text(KeyOK), message, func(reveal bool) {
		if !reveal {
			return
		}
		if err := ui.reveal(outputPath); err != nil {
			ui.log.Error().Err(err).Str("path", outputPath).Msg("Failed to reveal file")
			dialog.ShowError(fmt.Errorf("%s: %w", text(KeyErrorOpeningFile), err), ui.window)
		}
	}, ui.window)
	d.Show()
}

// showError shows a blocking alert with a localized message
func (ui *RootUI) showError(err error) {
	if err == nil {
		return
	}
	dialog.ShowError(errors.New(ui.errorText(err)), ui.window)
}

// errorText maps known errors to localized messages
func (ui *RootUI) errorText(err error) string {
	text := ui.localization.GetText

	var pre *apperrors.PreconditionError
	if errors.As(err, &pre) {
		switch pre.Reason {
		case apperrors.ReasonMergeToolMissing:
			return text(KeyMergeToolMissing)
		case apperrors.ReasonEmptyURL:
			return text(KeyPleaseEnterURL)
		case apperrors.ReasonNoDestination:
			return text(KeyPleaseChooseFolder)
		case apperrors.ReasonDestinationMissing:
			return text(KeyFolderMissing)
		case apperrors.ReasonInvalidQuality:
			return text(KeyInvalidQuality)
		case apperrors.ReasonBusy:
			return text(KeyDownloadRunning)
		}
		return pre.Error()
	}

	var dl *apperrors.DownloadError
	if errors.As(err, &dl) {
		return fmt.Sprintf(text(KeyErrorOccurred), dl.Err)
	}
	return fmt.Sprintf(text(KeyErrorOccurred), err)
}
