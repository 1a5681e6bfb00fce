// Package pkg provides the core libraries for identicon generation.
//
// # Overview
//
// An identicon is a deterministic avatar derived from an input string: the
// same input always produces the same image. The pkg directory is organized
// into three main areas:
//
//  1. [identicon] - Domain logic (hashing, color, grid, pixel mapping)
//  2. [render], [store], [cache] - Output and persistence boundaries
//  3. [pipeline] - Orchestration (derive → render → persist)
//
// # Architecture
//
// The typical data flow:
//
//	input string
//	     ↓
//	[identicon] package (digest → color → grid → pixel map)
//	     ↓
//	[render] package (PNG/SVG bytes)
//	     ↓
//	[store] package (filesystem or MongoDB)
//
// # Quick Start
//
// Derive an identicon and render it to PNG:
//
//	import (
//	    "github.com/matzehuels/identicon/pkg/identicon"
//	    "github.com/matzehuels/identicon/pkg/render"
//	)
//
//	// 1. Derive the descriptor
//	img, _ := identicon.Derive("banana")
//
//	// 2. Render to PNG bytes
//	data, _ := render.PNG(img, 0)
//
// Or run the whole pipeline with caching and persistence:
//
//	runner := pipeline.NewRunner(nil, nil, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Input: "banana"})
//
// # Main Packages
//
// ## Core Domain Logic
//
// [identicon] - Pure derivation pipeline: MD5 digest, color extraction,
// mirrored 5×5 grid, even-value filtering, and pixel rectangle mapping.
// No I/O; every function is deterministic.
//
// [render] - Rasterizes a derived descriptor to PNG (via fogleman/gg and
// disintegration/imaging) or emits SVG markup.
//
// ## Infrastructure
//
// [cache] - Artifact cache backends: FileCache for the CLI, RedisCache for
// the HTTP service, NullCache for tests and --no-cache.
//
// [store] - Persistence backends: FileStore writes `<input>.png` files,
// MongoStore upserts artifacts into a collection.
//
// [pipeline] - Orchestration with per-stage timing, cache integration, and
// observability hooks.
//
// [config], [errors], [observability], [buildinfo] - Supporting packages
// for TOML configuration, structured error codes, hook registration, and
// build metadata.
package pkg
