package platform

// Package platform contains OS/platform integration: filesystem helpers used
// by the fetch and merge stages, atomic file replacement, and OS open/reveal.
