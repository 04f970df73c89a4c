package fetch

// Package fetch implements the download stage: one HTTP GET per region against
// the countries REST API, flattened into a per-region CSV file. Regions are
// fetched strictly one after another and a failed region never stops the run.
