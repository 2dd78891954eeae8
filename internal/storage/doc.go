// Package storage defines the persistence interface for the planner document.
//
// It provides a high-level abstraction for storing the single planner
// Document along with its timestamped backups. The JSON-file implementation
// of this interface lives in the jsonfile subpackage.
//
// Storage failures carry the STORAGE_* codes from the platform errors
// package, so front ends can report them without inspecting file paths.
package storage
