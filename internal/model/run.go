package model

import (
	"time"
)

// FetchRun groups the region tasks of one download pass
type FetchRun struct {
	ID        string        `json:"id"`
	Dir       string        `json:"dir"`
	Tasks     []*RegionTask `json:"tasks"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewFetchRun creates a new run writing into dir
func NewFetchRun(id, dir string) *FetchRun {
	now := time.Now()
	return &FetchRun{
		ID:        id,
		Dir:       dir,
		Tasks:     make([]*RegionTask, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddTask appends a task to the run
func (r *FetchRun) AddTask(task *RegionTask) {
	r.Tasks = append(r.Tasks, task)
	r.UpdatedAt = time.Now()
}

// Completed returns all tasks that wrote their file
func (r *FetchRun) Completed() []*RegionTask {
	var completed []*RegionTask
	for _, task := range r.Tasks {
		if task.Status == TaskStatusCompleted {
			completed = append(completed, task)
		}
	}
	return completed
}

// Failed returns all tasks that ended in error
func (r *FetchRun) Failed() []*RegionTask {
	var failed []*RegionTask
	for _, task := range r.Tasks {
		if task.Status == TaskStatusError {
			failed = append(failed, task)
		}
	}
	return failed
}

// TotalRows returns the number of rows written across completed tasks
func (r *FetchRun) TotalRows() int {
	total := 0
	for _, task := range r.Completed() {
		total += task.Rows
	}
	return total
}

// HasErrors checks if any task failed
func (r *FetchRun) HasErrors() bool {
	return len(r.Failed()) > 0
}
