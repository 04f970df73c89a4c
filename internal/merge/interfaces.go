package merge

// Merger defines the interface for the merge service.
type Merger interface {
	// Merge combines the CSV files of inputDir into outputPath
	Merge(inputDir, outputPath string) (*Result, error)
}
