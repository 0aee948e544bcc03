// Package tagscan locates embedded metadata tags inside audio files.
//
// It does not decode field values (titles, artists, pictures); it answers
// a narrower question — for a given file, which tag formats are present,
// and at what byte offset and length — so that a separate parsing layer
// can seek to each region and decode it.
//
// The entry points are Detect, for a single file, and DetectBatch, for a
// list of files. Both take a ScanConfiguration describing which formats to
// look for.
package tagscan
