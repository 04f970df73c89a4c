package model

import (
	"errors"
	"testing"
)

func TestFetchRun_Aggregates(t *testing.T) {
	run := NewFetchRun("run-1", "/tmp/continents")

	if run.HasErrors() || run.TotalRows() != 0 {
		t.Error("Expected an empty run to have no errors and no rows")
	}

	africa := NewRegionTask("1", "Africa", "", "")
	americas := NewRegionTask("2", "Americas", "", "")
	asia := NewRegionTask("3", "Asia", "", "")
	europe := NewRegionTask("4", "Europe", "", "")
	for _, task := range []*RegionTask{africa, americas, asia, europe} {
		run.AddTask(task)
	}

	africa.Complete(59)
	americas.Complete(56)
	asia.Fail(errors.New("timeout"))

	if got := len(run.Completed()); got != 2 {
		t.Errorf("Expected 2 completed tasks, got %d", got)
	}
	if got := len(run.Failed()); got != 1 {
		t.Errorf("Expected 1 failed task, got %d", got)
	}
	if !run.HasErrors() {
		t.Error("Expected run to report errors")
	}
	if run.TotalRows() != 115 {
		t.Errorf("Expected 115 rows, got %d", run.TotalRows())
	}
	if europe.Status.IsFinished() {
		t.Errorf("Expected europe to be unfinished, got %s", europe.Status)
	}
}
