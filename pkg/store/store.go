// Package store persists rendered identicon artifacts.
//
// The Store interface is the persister boundary of the pipeline: it
// receives encoded bytes and a name derived from the original input and
// writes them somewhere durable. Two backends are provided:
//   - FileStore: writes files into an output directory (CLI default)
//   - MongoStore: archives artifacts in a MongoDB collection for
//     service deployments
//
// Persistence is the only fallible stage of a normal pipeline run.
// Failures surface to the caller unchanged; there are no retries and no
// partial output.
package store

import (
	"context"
	"strings"
)

// Store writes rendered artifacts.
type Store interface {
	// Save persists data under name and returns the artifact's location
	// (a file path or a backend-specific identifier).
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Close releases backend resources.
	Close() error
}

// Filename derives the artifact name for an input and format, e.g.
// "banana" → "banana.png". Path separators and parent references in the
// input are flattened so the name stays inside the output directory.
func Filename(input, format string) string {
	name := strings.NewReplacer("/", "-", "\\", "-", "..", "-").Replace(input)
	if name == "" {
		name = "identicon"
	}
	return name + "." + format
}
