package model

import (
	"fmt"
	"strings"
	"time"
)

// RegionTask represents the fetch of a single region into its CSV file
type RegionTask struct {
	ID         string
	Region     string
	URL        string
	Status     TaskStatus
	Rows       int       // number of country rows written
	LastError  string    // last error message if any
	OutputPath string    // path to the region CSV file
	StartedAt  time.Time // when the request was issued
	FinishedAt time.Time // when the task finished
}

// NewRegionTask creates a pending task for the given region
func NewRegionTask(id, region, url, outputPath string) *RegionTask {
	return &RegionTask{
		ID:         id,
		Region:     region,
		URL:        url,
		OutputPath: outputPath,
		Status:     TaskStatusPending,
	}
}

// Fail marks the task as failed with err
func (rt *RegionTask) Fail(err error) {
	rt.Status = TaskStatusError
	if err != nil {
		rt.LastError = err.Error()
	}
	rt.FinishedAt = time.Now()
}

// Complete marks the task as completed with the number of rows written
func (rt *RegionTask) Complete(rows int) {
	rt.Status = TaskStatusCompleted
	rt.Rows = rows
	rt.LastError = ""
	rt.FinishedAt = time.Now()
}

// GetDurationString returns the elapsed fetch time as mm:ss.mmm, or "—" if the
// task has not finished
func (rt *RegionTask) GetDurationString() string {
	if rt.StartedAt.IsZero() || rt.FinishedAt.IsZero() || rt.FinishedAt.Before(rt.StartedAt) {
		return "—"
	}

	d := rt.FinishedAt.Sub(rt.StartedAt)
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	millis := int((d % time.Second) / time.Millisecond)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis))
	return b.String()
}

// GetDisplayTitle returns region, file name, or URL in order of preference
func (rt *RegionTask) GetDisplayTitle() string {
	if rt.Region != "" {
		return rt.Region
	}

	if rt.OutputPath != "" {
		parts := strings.FieldsFunc(rt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return rt.URL
}
