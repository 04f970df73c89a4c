package fetch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/ytget/countries/internal/logger"
	"github.com/ytget/countries/internal/model"
	"github.com/ytget/countries/internal/platform"
)

// API constants
const (
	DefaultEndpoint = "https://restcountries.com/v3.1/region"
	UserAgent       = "countries-explorer"
	AcceptJSON      = "application/json"
	TaskIDPrefix    = "fetch-"
	RunIDPrefix     = "run-"
	RegionFileExt   = ".csv"
)

// ErrUnexpectedStatus is returned when the API answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Service handles region fetch operations
type Service struct {
	client   *http.Client
	endpoint string
	log      logr.Logger
	onUpdate func(*model.RegionTask) // callback for progress reporting
}

// NewService creates a new fetch service. A nil client means http.DefaultClient.
func NewService(endpoint string, client *http.Client, log logr.Logger) *Service {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		log:      log,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.RegionTask)) {
	s.onUpdate = callback
}

// RegionURL returns the endpoint queried for region
func (s *Service) RegionURL(region string) string {
	return s.endpoint + "/" + url.PathEscape(region)
}

// RegionFilePath returns the CSV path written for region inside dir
func RegionFilePath(dir, region string) string {
	return filepath.Join(dir, region+RegionFileExt)
}

// FetchAll fetches every region into dir, one after another. The returned run
// records per-region failures; the error is non-nil only when dir cannot be
// created or ctx is cancelled.
func (s *Service) FetchAll(ctx context.Context, regions []string, dir string) (*model.FetchRun, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	run := model.NewFetchRun(generateID(RunIDPrefix), dir)
	log := s.log.WithValues(logger.RunIDKey, run.ID, "dir", dir)
	log.Info("fetch run started", "regions", len(regions))

	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return run, err
		}

		task, err := s.FetchRegion(ctx, region, RegionFilePath(dir, region))
		run.AddTask(task)
		if err != nil {
			// one failed region must not stop the others
			log.Error(err, "region fetch failed", "region", region)
			continue
		}
	}

	log.Info("fetch run finished",
		"completed", len(run.Completed()),
		"failed", len(run.Failed()),
		"rows", run.TotalRows())
	return run, nil
}

// FetchRegion issues one request for region and writes its CSV to outputPath.
// On failure the task carries the error and any previous file is kept.
func (s *Service) FetchRegion(ctx context.Context, region, outputPath string) (*model.RegionTask, error) {
	task := model.NewRegionTask(generateID(TaskIDPrefix), region, s.RegionURL(region), outputPath)
	log := s.log.WithValues("task_id", task.ID, "region", region)

	task.Status = model.TaskStatusFetching
	task.StartedAt = time.Now()
	s.notifyUpdate(task)
	log.V(1).Info("requesting region", "url", task.URL)

	countries, err := s.get(ctx, task.URL)
	if err != nil {
		task.Fail(err)
		s.notifyUpdate(task)
		return task, err
	}

	task.Status = model.TaskStatusWriting
	s.notifyUpdate(task)

	if err := writeRegionCSV(outputPath, countries); err != nil {
		err = fmt.Errorf("write %s: %w", outputPath, err)
		task.Fail(err)
		s.notifyUpdate(task)
		return task, err
	}

	task.Complete(len(countries))
	s.notifyUpdate(task)
	log.Info("region saved", "rows", task.Rows, "path", outputPath, "elapsed", task.GetDurationString())
	return task, nil
}

// get performs the GET request and decodes the country array
func (s *Service) get(ctx context.Context, rawURL string) ([]apiCountry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", AcceptJSON)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s from %s", ErrUnexpectedStatus, resp.Status, rawURL)
	}

	return decodeCountries(resp.Body)
}

// writeRegionCSV atomically writes countries in the per-region schema
func writeRegionCSV(path string, countries []apiCountry) error {
	return platform.WriteFileAtomic(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(model.RegionColumns); err != nil {
			return err
		}
		for _, c := range countries {
			if err := w.Write(c.toRecord().Values(model.RegionColumns)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.RegionTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateID generates a unique prefixed ID
func generateID(prefix string) string {
	return prefix + uuid.New().String()
}
