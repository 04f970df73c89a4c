package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "continents")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestListFilesWithExt(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"Europe.csv", "Africa.csv", "all.csv", "notes.txt", "Asia.CSV"} {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0o600); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tempDir, "dir.csv"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	names, err := ListFilesWithExt(tempDir, ".csv", "all.csv")
	if err != nil {
		t.Fatalf("ListFilesWithExt failed: %v", err)
	}

	expected := []string{"Africa.csv", "Asia.CSV", "Europe.csv"}
	if strings.Join(names, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v, got %v", expected, names)
	}
}

func TestListFilesWithExt_MissingDir(t *testing.T) {
	_, err := ListFilesWithExt(filepath.Join(t.TempDir(), "missing"), ".csv")
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func TestBaseNameWithoutExt(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"continents/Americas.csv", "Americas"},
		{"Oceania.csv", "Oceania"},
		{"/data/archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := BaseNameWithoutExt(tt.path); got != tt.expected {
			t.Errorf("BaseNameWithoutExt(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "Africa.csv")

	err := WriteFileAtomic(path, func(f *os.File) error {
		_, err := fmt.Fprint(f, "first")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "first" {
		t.Fatalf("Expected 'first', got %q (err %v)", data, err)
	}

	if _, err := os.Stat(path + TempSuffix); !os.IsNotExist(err) {
		t.Error("Temp file should not remain after a successful write")
	}
}

func TestWriteFileAtomic_FailureKeepsPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Europe.csv")
	if err := os.WriteFile(path, []byte("previous"), 0o600); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	boom := errors.New("boom")
	err := WriteFileAtomic(path, func(f *os.File) error {
		fmt.Fprint(f, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom error, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "previous" {
		t.Errorf("Expected previous content to survive, got %q", data)
	}
	if _, err := os.Stat(path + TempSuffix); !os.IsNotExist(err) {
		t.Error("Temp file should be removed after a failed write")
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "nonexistent.csv"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "nonexistent.csv"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}
