package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"

	"github.com/ytget/ytdl-gui/internal/config"
	"github.com/ytget/ytdl-gui/internal/download"
	"github.com/ytget/ytdl-gui/internal/platform"
	"github.com/ytget/ytdl-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.ytdl-gui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(nil, os.Stderr).Fatal().Err(err).Msg("Failed to load config")
	}
	logger := config.NewLogger(cfg, os.Stdout)
	logger.Info().Str("version", version).Msg("ytdl-gui starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	// The user's override wins over the configured path; both fall back to PATH
	locator := platform.NewMergeToolLocator(func() string {
		if p := settings.GetMergeToolPath(); p != "" {
			return p
		}
		return cfg.FFmpegPath
	})

	fetcher := download.NewYTDLPFetcher(download.FetcherOptions{
		Executable:       cfg.YTDLPPath,
		AutoInstall:      cfg.AutoInstall,
		ProgressInterval: cfg.ProgressInterval,
	}, logger)

	coordinator := download.NewCoordinator(fetcher, locator, afero.NewOsFs(), logger)

	rootUI := ui.NewRootUI(myWindow, settings, coordinator, logger)

	ctx, cancel := context.WithCancel(context.Background())
	rootUI.Listen(ctx)

	myApp.Lifecycle().SetOnStopped(func() {
		cancel()
		coordinator.Shutdown()
		logger.Info().Msg("ytdl-gui stopped")
	})

	myWindow.ShowAndRun()
}
