// Package document implements the MailCanvas block graph: a flat, id-indexed
// collection of positioned blocks with optional one-level parent grouping,
// canvas settings, design tokens, and per-type name counters.
//
// The document is the single source of truth for the editor. All other
// engines (constraint resolution, snapping, export) are pure functions over
// a read of this state and never mutate it.
//
// # Coordinate contract
//
// A grouped block's on-screen absolute position is always
// parent.Layout.{X,Y} + child.Layout.{X,Y}, single level only. Renderers and
// exporters must apply this transform when flattening a group.
package document

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/SharadhNaidu/mailcanvas/pkg/geometry"
)

// Document is the block graph plus canvas settings and design tokens.
// Blocks live in one flat collection keyed by id; "children of X" is a
// derived query, which sidesteps ownership cycles entirely.
type Document struct {
	Canvas CanvasSettings

	blocks   []*Block // insertion order, the stable tie-break for export sorting
	index    map[string]*Block
	tokens   []Token
	counters map[Type]int
}

// New creates an empty document with default canvas settings.
func New() *Document {
	return &Document{
		Canvas:   DefaultCanvas(),
		index:    make(map[string]*Block),
		counters: make(map[Type]int),
	}
}

// =============================================================================
// Block Queries
// =============================================================================

// Block returns the block with the given id.
func (d *Document) Block(id string) (*Block, bool) {
	b, ok := d.index[id]
	return b, ok
}

// Blocks returns all blocks in insertion order. The slice is a copy; the
// blocks are not.
func (d *Document) Blocks() []*Block {
	out := make([]*Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Len returns the number of blocks in the document.
func (d *Document) Len() int { return len(d.blocks) }

// Children returns the blocks owned by the given group, in insertion order.
func (d *Document) Children(groupID string) []*Block {
	var out []*Block
	for _, b := range d.blocks {
		if b.ParentID == groupID {
			out = append(out, b)
		}
	}
	return out
}

// TopLevel returns the blocks with no parent group, in insertion order.
// A block whose parent id dangles (references a missing or non-group block)
// is treated as top-level rather than dropped.
func (d *Document) TopLevel() []*Block {
	var out []*Block
	for _, b := range d.blocks {
		if d.isTopLevel(b) {
			out = append(out, b)
		}
	}
	return out
}

func (d *Document) isTopLevel(b *Block) bool {
	if b.ParentID == "" {
		return true
	}
	parent, ok := d.index[b.ParentID]
	return !ok || !parent.IsGroup()
}

// AbsoluteBounds returns a block's bounding box in canvas space, applying the
// parent offset for grouped blocks.
func (d *Document) AbsoluteBounds(b *Block) geometry.Bounds {
	bounds := b.Layout.Bounds()
	if b.ParentID == "" {
		return bounds
	}
	parent, ok := d.index[b.ParentID]
	if !ok || !parent.IsGroup() {
		return bounds
	}
	return bounds.Translate(parent.Layout.X, parent.Layout.Y)
}

// MaxZIndex returns the highest z-index among all blocks, or 0 for an empty
// document.
func (d *Document) MaxZIndex() int {
	maxZ := 0
	for _, b := range d.blocks {
		if b.Layout.ZIndex > maxZ {
			maxZ = b.Layout.ZIndex
		}
	}
	return maxZ
}

// =============================================================================
// Block Mutations
// =============================================================================

// Add inserts a block into the document. Missing ids are generated, missing
// names are derived from the per-type counter ("Text 3"), and added blocks
// start visible. Hide a block after adding it; deserialization restores
// hidden blocks without passing through here.
func (d *Document) Add(b *Block) *Block {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Name == "" {
		b.Name = d.nextName(b.Type)
	}
	if b.Anchor == (Anchor{}) {
		b.Anchor = DefaultAnchor()
	}
	b.Visible = true
	d.blocks = append(d.blocks, b)
	d.index[b.ID] = b
	return b
}

// Remove deletes the block with the given id. Removing a group re-parents its
// children to top level at their current absolute positions, so nothing is
// silently destroyed with the container.
func (d *Document) Remove(id string) bool {
	b, ok := d.index[id]
	if !ok {
		return false
	}
	if b.IsGroup() {
		for _, child := range d.Children(id) {
			child.Layout.X += b.Layout.X
			child.Layout.Y += b.Layout.Y
			child.ParentID = ""
		}
	}
	delete(d.index, id)
	for i, blk := range d.blocks {
		if blk.ID == id {
			d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every block and resets the name counters. Canvas settings and
// tokens are kept.
func (d *Document) Clear() {
	d.blocks = nil
	d.index = make(map[string]*Block)
	d.counters = make(map[Type]int)
}

// nextName derives a display name from the per-type counter.
func (d *Document) nextName(t Type) string {
	d.counters[t]++
	label := string(t)
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return fmt.Sprintf("%s %d", label, d.counters[t])
}

// =============================================================================
// Tokens
// =============================================================================

// Tokens returns the design tokens in insertion order.
func (d *Document) Tokens() []Token {
	out := make([]Token, len(d.tokens))
	copy(out, d.tokens)
	return out
}

// TokenTable returns the tokens keyed by id for resolution lookups.
func (d *Document) TokenTable() map[string]Token {
	out := make(map[string]Token, len(d.tokens))
	for _, t := range d.tokens {
		out[t.ID] = t
	}
	return out
}

// AddToken inserts a design token, generating an id when missing.
func (d *Document) AddToken(t Token) Token {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	d.tokens = append(d.tokens, t)
	return t
}

// UpdateToken replaces the token with a matching id. Returns false when the
// id is unknown.
func (d *Document) UpdateToken(t Token) bool {
	for i := range d.tokens {
		if d.tokens[i].ID == t.ID {
			d.tokens[i] = t
			return true
		}
	}
	return false
}

// RemoveToken deletes a token by id. Style fields referencing the token are
// left untouched; resolution falls back to the raw reference string.
func (d *Document) RemoveToken(id string) bool {
	for i := range d.tokens {
		if d.tokens[i].ID == id {
			d.tokens = append(d.tokens[:i], d.tokens[i+1:]...)
			return true
		}
	}
	return false
}

// =============================================================================
// Snapshots - The Undo-Tracked Subset
// =============================================================================

// State is the serializable subset of document state checkpointed by the
// history manager and persisted by stores: blocks plus the per-type name
// counters. Transient view state (selection, viewport, in-progress drag)
// is explicitly excluded.
type State struct {
	Blocks           []*Block     `json:"blocks" bson:"blocks"`
	BlockTypeCounter map[Type]int `json:"blockTypeCounters" bson:"block_type_counters"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{
		Blocks:           make([]*Block, len(s.Blocks)),
		BlockTypeCounter: make(map[Type]int, len(s.BlockTypeCounter)),
	}
	for i, b := range s.Blocks {
		out.Blocks[i] = b.Clone()
	}
	for k, v := range s.BlockTypeCounter {
		out.BlockTypeCounter[k] = v
	}
	return out
}

// Snapshot returns a deep copy of the undo-tracked state.
func (d *Document) Snapshot() State {
	return State{Blocks: d.blocks, BlockTypeCounter: d.counters}.Clone()
}

// Restore replaces the undo-tracked state with a snapshot. The snapshot is
// deep-copied on the way in so later edits cannot corrupt history entries.
func (d *Document) Restore(s State) {
	s = s.Clone()
	d.blocks = s.Blocks
	d.counters = s.BlockTypeCounter
	d.index = make(map[string]*Block, len(s.Blocks))
	for _, b := range s.Blocks {
		d.index[b.ID] = b
	}
}

// Clone returns a deep copy of the whole document.
func (d *Document) Clone() *Document {
	out := New()
	out.Canvas = d.Canvas
	out.tokens = append([]Token(nil), d.tokens...)
	out.Restore(State{Blocks: d.blocks, BlockTypeCounter: d.counters})
	return out
}
