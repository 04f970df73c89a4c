package cli

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/countries/internal/config"
	"github.com/ytget/countries/internal/dataset"
	"github.com/ytget/countries/internal/logger"
	"github.com/ytget/countries/internal/ui"
)

// AppID identifies the application to Fyne; preferences are stored under it
const AppID = "com.ytget.countries"

// ViewRequest describes what the viewer should open
type ViewRequest struct {
	Pipeline config.Pipeline
	// DirPinned makes Pipeline.DataDir win over the saved preference
	DirPinned bool
}

// Viewer opens the desktop viewer and blocks until it is closed
type Viewer func(ctx context.Context, req ViewRequest) error

func newViewCommand(a *app, viewer Viewer) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the merged file in the desktop viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return viewer(cmd.Context(), ViewRequest{Pipeline: a.pipeline, DirPinned: a.dirPinned})
		},
	}
}

// RunViewer loads the merged file and runs the Fyne window. A missing or
// unreadable file opens an empty table and reports the error in the window.
func RunViewer(ctx context.Context, req ViewRequest) error {
	log := logger.FromContext(ctx).WithName("viewer")

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	window := fyneApp.NewWindow("Countries")
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	p := req.Pipeline
	settings := config.NewSettings(fyneApp, p.DataDir)
	if !req.DirPinned {
		p.DataDir = settings.GetDataDirectory()
	}
	path := p.MergedPath()

	store, loadErr := dataset.Load(path)
	if loadErr != nil {
		if errors.Is(loadErr, dataset.ErrDataFileNotFound) {
			log.Info("Merged file not found", "path", path)
		} else {
			log.Error(loadErr, "Failed to load merged file", "path", path)
		}
		store = dataset.NewStore(nil)
	} else if n := store.InvalidCount(); n > 0 {
		log.Info("Records with malformed numbers", "path", path, "count", n)
	}

	root := ui.NewRootUI(window, store, settings, ui.Options{Logger: log})
	if loadErr != nil {
		root.ReportLoadError(loadErr)
	}

	window.ShowAndRun()
	return nil
}
