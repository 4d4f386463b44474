// Package history persists completed analysis runs in SQLite.
//
// Each run stores its settings, one row per analyzed chapter and the top-N
// records produced for that chapter, so earlier results can be listed and
// shown without the exported files. The schema is versioned; a database
// written by a different version is rejected with ErrSchemaMismatch.
package history
