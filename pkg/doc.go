// Package pkg provides the core libraries for orgchart, a tool that turns
// company ownership documents into hierarchy diagrams.
//
// # Overview
//
// An organizational-chart document (PDF or image) is sent to an extraction
// service that returns a flat list of company records: name, parent company
// and equity share. orgchart rebuilds the ownership forest from that list,
// lays it out as a leveled chart or an indented tree, and renders it. The pkg
// directory is organized into these areas:
//
//  1. [company] - Record model, equity math, statistics and sample data
//  2. [hierarchy] - Two-pass forest builder with orphan detection
//  3. [layout] - Pure chart and tree positioning
//  4. [render] - Surface abstraction, themes and output sinks
//  5. [store] - The editor's explicit record and view state
//  6. [extract] - Upload client and the AI-backed extraction service
//  7. [pipeline] - Orchestration (build → layout → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	Document (PDF/PNG/JPG)
//	         ↓
//	    [extract] package (upload, AI parsing)
//	         ↓
//	    []company.Record  ←→  [io] package (JSON, CSV, XLSX)
//	         ↓
//	    [hierarchy] package (roots, children, orphans)
//	         ↓
//	    [layout] package (chart or tree positions)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF, JSON, DOT)
//
// # Quick Start
//
// Build and render the sample holding structure:
//
//	import (
//	    "github.com/matzehuels/orgchart/pkg/company"
//	    "github.com/matzehuels/orgchart/pkg/hierarchy"
//	    "github.com/matzehuels/orgchart/pkg/layout"
//	    "github.com/matzehuels/orgchart/pkg/render/sink"
//	)
//
//	f, _ := hierarchy.Build(company.Sample())
//	l, _ := layout.Build(layout.ModeChart, f, layout.WithWidth(1200))
//	svg := sink.RenderSVG(l)
//
// Most callers go through [pipeline.Runner], which adds option defaults,
// validation and layout/artifact caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, records, pipeline.Options{
//	    Mode:    "tree",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Supporting Packages
//
//   - [cache]: file, Redis and null caches plus key derivation
//   - [document]: upload sniffing and PDF text extraction
//   - [errors]: coded errors shared by the server and the CLI
//   - [fonts]: embedded Go fonts for raster output
//   - [observability]: pipeline, cache and HTTP hooks
//   - [buildinfo]: version information set at link time
//
// [company]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/company
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/hierarchy
// [layout]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/render/sink
// [store]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/store
// [extract]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/extract
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/pipeline#Runner
// [io]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/cache
// [document]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/document
// [errors]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/buildinfo
package pkg
