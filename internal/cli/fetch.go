package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ytget/countries/internal/fetch"
	"github.com/ytget/countries/internal/model"
)

// ErrRegionsFailed is returned by the fetch command when any region failed
var ErrRegionsFailed = errors.New("some regions failed")

func newFetchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download every configured region into one CSV file each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := a.fetch(cmd.Context())
			if err != nil {
				return err
			}
			if run.HasErrors() {
				return fmt.Errorf("%w: %d of %d", ErrRegionsFailed, len(run.Failed()), len(run.Tasks))
			}
			return nil
		},
	}
}

// fetch runs the fetch stage and prints one line per finished region
func (a *app) fetch(ctx context.Context) (*model.FetchRun, error) {
	client := &http.Client{Timeout: a.pipeline.HTTPTimeout}
	var svc fetch.Fetcher = fetch.NewService(a.pipeline.Endpoint, client, a.log.WithName("fetch"))

	st := newStyles(colorEnabled(a.out, a.opts.noColor))
	svc.SetUpdateCallback(func(task *model.RegionTask) {
		switch {
		case task.Status.IsActive():
			a.log.V(1).Info("Region in progress", "region", task.Region, "status", task.Status.String())
		case task.Status.IsFinished():
			printTask(a, st, task)
		}
	})

	fmt.Fprintln(a.out, st.heading.Render("Fetching "+itoa(len(a.pipeline.Regions))+" regions into "+a.pipeline.DataDir))
	run, err := svc.FetchAll(ctx, a.pipeline.Regions, a.pipeline.DataDir)
	if err != nil {
		return run, err
	}

	summary := fmt.Sprintf("%d of %d regions saved, %d countries", len(run.Completed()), len(run.Tasks), run.TotalRows())
	if run.HasErrors() {
		fmt.Fprintln(a.out, st.fail.Render(summary))
	} else {
		fmt.Fprintln(a.out, st.ok.Render(summary))
	}
	return run, nil
}

func printTask(a *app, st styles, task *model.RegionTask) {
	switch task.Status {
	case model.TaskStatusCompleted:
		fmt.Fprintf(a.out, "  %s %-10s %4d rows  %s\n",
			st.ok.Render("✓"), task.GetDisplayTitle(), task.Rows, st.muted.Render(task.GetDurationString()))
	case model.TaskStatusError:
		fmt.Fprintf(a.out, "  %s %-10s %s\n", st.fail.Render("✗"), task.GetDisplayTitle(), task.LastError)
	}
}
