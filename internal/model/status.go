package model

// TaskStatus represents the status of a region fetch task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusFetching means the request for the region is in flight
	TaskStatusFetching TaskStatus = "Fetching"

	// TaskStatusWriting means the response was decoded and the CSV is being written
	TaskStatusWriting TaskStatus = "Writing"

	// TaskStatusCompleted means the region file was written successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusFetching || ts == TaskStatusWriting
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
