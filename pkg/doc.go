// Package pkg provides the core libraries for Mailcanvas email document editing.
//
// # Overview
//
// Mailcanvas edits free-form, absolutely-positioned block documents and
// compiles them into strictly vertical email markup via flow approximation.
// The pkg directory is organized into three main areas:
//
//  1. Document core — data model and the pure engines that operate on it
//     ([document], [geometry], [constraint], [snap], [history])
//  2. Orchestration — the mutation API and the export compiler
//     ([editor], [export])
//  3. Infrastructure — persistence, caching, configuration, visualization
//     ([store], [cache], [config], [outline], [errors], [buildinfo])
//
// # Architecture
//
// The typical data flow through Mailcanvas:
//
//	Document file (JSON)
//	         ↓
//	    [document] package (blocks, groups, tokens, canvas)
//	         ↓
//	    [editor] package (mutations + undo/redo history)
//	         ↓
//	    [export] package (flow approximation → email markup → HTML)
//	         ↓
//	    Markup/HTML output (cached by content hash)
//
// # Quick Start
//
// Build a document, edit it, and compile an export:
//
//	import (
//	    "context"
//	    "github.com/SharadhNaidu/mailcanvas/pkg/document"
//	    "github.com/SharadhNaidu/mailcanvas/pkg/editor"
//	    "github.com/SharadhNaidu/mailcanvas/pkg/export"
//	)
//
//	// 1. Create an editor over a fresh document
//	e := editor.New(document.New(), editor.Options{})
//
//	// 2. Add and arrange blocks
//	b := e.AddBlock(document.TypeText, document.Layout{X: 20, Y: 20, Width: 560, Height: 40})
//	e.UpdateContent(b.ID, "Hello!")
//
//	// 3. Compile to markup and HTML
//	res, _ := export.Export(context.Background(), e.Document(),
//	    export.WithHTMLCompiler(export.Basic{}))
//
// # Main Packages
//
// ## Document Core
//
// [document] - The block data model: typed blocks with geometry, anchors,
// z-order, style maps and type payloads; single-level groups with the
// relative-coordinate contract; design tokens with the "token:" reference
// sentinel; JSON/BSON serialization and file IO.
//
// [geometry] - Axis-aligned bounds math shared by the engines (edges,
// centers, union, containment).
//
// [constraint] - Anchor-based resolution: recomputes block geometry when the
// canvas width changes, per-block anchor modes with clamping.
//
// [snap] - Two-pass snap/guide engine for drag gestures: candidate
// collection, nearest-match within threshold, de-duplicated guide lines.
//
// [history] - Bounded undo/redo over document snapshots with
// gesture-granular commits.
//
// ## Orchestration
//
// [editor] - The mutation API tying the core together: add/remove/update,
// group/ungroup, align/distribute, copy/paste/duplicate, drag lifecycle,
// canvas resize, token CRUD. Every mutation commits through [history].
//
// [export] - The flow-approximation compiler: deterministic email markup
// from a y-sorted, group-flattened block list, token resolution with literal
// fallback, warning placeholders for unexportable content, and a pluggable
// downstream markup→HTML compiler.
//
// ## Infrastructure
//
// [store] - Named-document persistence: FileStore (filesystem) and
// MongoStore (shared deployments).
//
// [cache] - Export artifact caching keyed by document content hash:
// FileCache, RedisCache, NullCache.
//
// [config] - TOML configuration: canvas defaults, snap/history tuning,
// breakpoints, cache and store backends.
//
// [outline] - Block hierarchy visualization as DOT/SVG/PNG via Graphviz.
//
// [errors] - Code-classified errors and input validation for the outer
// surfaces (CLI, store, server).
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/export/...       # Specific package
//
// [document]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/document
// [geometry]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/geometry
// [constraint]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/constraint
// [snap]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/snap
// [history]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/history
// [editor]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/editor
// [export]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/export
// [store]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/store
// [cache]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/cache
// [config]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/config
// [outline]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/outline
// [errors]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/SharadhNaidu/mailcanvas/pkg/buildinfo
package pkg
