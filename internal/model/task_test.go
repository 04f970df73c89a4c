package model

import (
	"errors"
	"testing"
	"time"
)

func TestRegionTask_GetDurationString(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		finish   time.Time
		expected string
	}{
		{time.Time{}, "—"},
		{start.Add(-time.Second), "—"},
		{start.Add(1500 * time.Millisecond), "00:01.500"},
		{start.Add(90 * time.Second), "01:30.000"},
	}

	for _, test := range tests {
		task := &RegionTask{StartedAt: start, FinishedAt: test.finish}
		result := task.GetDurationString()
		if result != test.expected {
			t.Errorf("GetDurationString() with finish=%v = %s, expected %s", test.finish, result, test.expected)
		}
	}
}

func TestRegionTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		region   string
		output   string
		url      string
		expected string
	}{
		{"Americas", "/data/Americas.csv", "https://example.com/region/Americas", "Americas"},
		{"", "/data/Oceania.csv", "https://example.com/region/Oceania", "Oceania"},
		{"", `C:\data\Asia.csv`, "", "Asia"},
		{"", "", "https://example.com/region/Europe", "https://example.com/region/Europe"},
	}

	for _, test := range tests {
		task := &RegionTask{Region: test.region, OutputPath: test.output, URL: test.url}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with region='%s', output='%s' = '%s', expected '%s'",
				test.region, test.output, result, test.expected)
		}
	}
}

func TestRegionTask_Transitions(t *testing.T) {
	task := NewRegionTask("task-1", "Africa", "https://example.com/region/Africa", "/tmp/Africa.csv")
	if task.Status != TaskStatusPending {
		t.Fatalf("Expected status Pending, got %s", task.Status)
	}

	task.Fail(errors.New("boom"))
	if task.Status != TaskStatusError {
		t.Errorf("Expected status Error, got %s", task.Status)
	}
	if task.LastError != "boom" {
		t.Errorf("Expected LastError 'boom', got '%s'", task.LastError)
	}
	if task.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set")
	}

	task.Complete(54)
	if task.Status != TaskStatusCompleted || task.Rows != 54 || task.LastError != "" {
		t.Errorf("Unexpected task after Complete: %+v", task)
	}
}
