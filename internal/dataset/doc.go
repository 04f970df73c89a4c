// Package dataset holds the merged country dataset in memory and implements
// the viewer operations over it: prefix search, in-place stable sort,
// multi-criteria and expression filters, and summary statistics.
//
// A Store owns the records. Handlers take the store and the current View and
// return the next View, so the UI keeps no dataset state of its own. Search
// and filter never mutate the store; only Sort reorders it.
package dataset
