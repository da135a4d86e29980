package document

import (
	"github.com/SharadhNaidu/mailcanvas/pkg/geometry"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Type identifies the kind of content a block carries.
type Type string

// Block types.
const (
	TypeText    Type = "text"
	TypeImage   Type = "image"
	TypeButton  Type = "button"
	TypeSpacer  Type = "spacer"
	TypeDivider Type = "divider"
	TypeSocial  Type = "social"
	TypeShape   Type = "shape"
	TypeTable   Type = "table"
	TypeList    Type = "list"
	TypeGroup   Type = "group"
)

// ValidTypes is the set of supported block types.
var ValidTypes = map[Type]bool{
	TypeText:    true,
	TypeImage:   true,
	TypeButton:  true,
	TypeSpacer:  true,
	TypeDivider: true,
	TypeSocial:  true,
	TypeShape:   true,
	TypeTable:   true,
	TypeList:    true,
	TypeGroup:   true,
}

// AnchorMode is a block's rule for repositioning when the canvas is resized.
type AnchorMode string

// Anchor modes. Horizontal anchoring uses Left/Right/Center/Scale; vertical
// anchoring uses the Top/Bottom/Center/Scale analogues.
const (
	AnchorLeft   AnchorMode = "left"
	AnchorRight  AnchorMode = "right"
	AnchorCenter AnchorMode = "center"
	AnchorScale  AnchorMode = "scale"
	AnchorTop    AnchorMode = "top"
	AnchorBottom AnchorMode = "bottom"
)

// Shape kinds carried in a shape block's content field.
const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapeLine      = "line"
)

// Social icon color modes.
const (
	SocialColorBrand     = "brand"
	SocialColorMonoDark  = "mono-dark"
	SocialColorMonoLight = "mono-light"
	SocialColorCustom    = "custom"
)

// =============================================================================
// Layout - Position and Size
// =============================================================================

// Layout is a block's position and size on the canvas. For grouped blocks,
// X and Y are relative to the owning group's own X and Y, not the canvas
// origin.
type Layout struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	// AutoHeight marks the height as the "auto" sentinel: the block sizes
	// to its content and Height holds only a best-effort estimate.
	AutoHeight bool `json:"autoHeight,omitempty" bson:"auto_height,omitempty"`
	ZIndex     int  `json:"zIndex" bson:"z_index"`
}

// Bounds returns the axis-aligned bounding box of the layout in its own
// coordinate space.
func (l Layout) Bounds() geometry.Bounds {
	return geometry.FromRect(l.X, l.Y, l.Width, l.Height)
}

// Anchor is a block's constraint record: one mode per axis.
type Anchor struct {
	Horizontal AnchorMode `json:"horizontal" bson:"horizontal"`
	Vertical   AnchorMode `json:"vertical" bson:"vertical"`
}

// DefaultAnchor anchors a block to the top-left corner.
func DefaultAnchor() Anchor {
	return Anchor{Horizontal: AnchorLeft, Vertical: AnchorTop}
}

// =============================================================================
// Style - Semantic Fields + Extension Bag
// =============================================================================

// Style holds a block's visual attributes: a closed set of well-known
// semantic fields plus an extension bag for forward-compatible keys.
// Values may be design-token references (see ResolveToken); stored values
// are never rewritten, resolution happens at read time.
type Style struct {
	Color        string `json:"color,omitempty" bson:"color,omitempty"`
	Background   string `json:"background,omitempty" bson:"background,omitempty"`
	FontFamily   string `json:"fontFamily,omitempty" bson:"font_family,omitempty"`
	FontSize     string `json:"fontSize,omitempty" bson:"font_size,omitempty"`
	FontWeight   string `json:"fontWeight,omitempty" bson:"font_weight,omitempty"`
	TextAlign    string `json:"textAlign,omitempty" bson:"text_align,omitempty"`
	LineHeight   string `json:"lineHeight,omitempty" bson:"line_height,omitempty"`
	BorderColor  string `json:"borderColor,omitempty" bson:"border_color,omitempty"`
	BorderWidth  string `json:"borderWidth,omitempty" bson:"border_width,omitempty"`
	BorderRadius string `json:"borderRadius,omitempty" bson:"border_radius,omitempty"`
	Padding      string `json:"padding,omitempty" bson:"padding,omitempty"`

	// Extra carries unknown keys so documents written by newer versions
	// survive a round-trip through this one.
	Extra map[string]string `json:"extra,omitempty" bson:"extra,omitempty"`
}

// Well-known style keys accepted by Get/Set.
const (
	StyleColor        = "color"
	StyleBackground   = "background"
	StyleFontFamily   = "fontFamily"
	StyleFontSize     = "fontSize"
	StyleFontWeight   = "fontWeight"
	StyleTextAlign    = "textAlign"
	StyleLineHeight   = "lineHeight"
	StyleBorderColor  = "borderColor"
	StyleBorderWidth  = "borderWidth"
	StyleBorderRadius = "borderRadius"
	StylePadding      = "padding"
)

// Get returns the value for a style key, consulting the extension bag for
// keys outside the well-known set.
func (s *Style) Get(key string) string {
	switch key {
	case StyleColor:
		return s.Color
	case StyleBackground:
		return s.Background
	case StyleFontFamily:
		return s.FontFamily
	case StyleFontSize:
		return s.FontSize
	case StyleFontWeight:
		return s.FontWeight
	case StyleTextAlign:
		return s.TextAlign
	case StyleLineHeight:
		return s.LineHeight
	case StyleBorderColor:
		return s.BorderColor
	case StyleBorderWidth:
		return s.BorderWidth
	case StyleBorderRadius:
		return s.BorderRadius
	case StylePadding:
		return s.Padding
	default:
		return s.Extra[key]
	}
}

// Set stores a value for a style key, routing unknown keys to the extension bag.
func (s *Style) Set(key, value string) {
	switch key {
	case StyleColor:
		s.Color = value
	case StyleBackground:
		s.Background = value
	case StyleFontFamily:
		s.FontFamily = value
	case StyleFontSize:
		s.FontSize = value
	case StyleFontWeight:
		s.FontWeight = value
	case StyleTextAlign:
		s.TextAlign = value
	case StyleLineHeight:
		s.LineHeight = value
	case StyleBorderColor:
		s.BorderColor = value
	case StyleBorderWidth:
		s.BorderWidth = value
	case StyleBorderRadius:
		s.BorderRadius = value
	case StylePadding:
		s.Padding = value
	default:
		if s.Extra == nil {
			s.Extra = make(map[string]string)
		}
		s.Extra[key] = value
	}
}

// Clone returns a deep copy of the style.
func (s Style) Clone() Style {
	out := s
	if s.Extra != nil {
		out.Extra = make(map[string]string, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// =============================================================================
// Type-Specific Payloads
// =============================================================================

// SocialLink is one entry in a social block's network list.
type SocialLink struct {
	Network string `json:"network" bson:"network"`
	URL     string `json:"url" bson:"url"`
	Enabled bool   `json:"enabled" bson:"enabled"`
}

// SocialData is the payload of a social block.
type SocialData struct {
	Links       []SocialLink `json:"links" bson:"links"`
	ColorMode   string       `json:"colorMode" bson:"color_mode"`
	CustomColor string       `json:"customColor,omitempty" bson:"custom_color,omitempty"`
}

// TableData is the payload of a table block: a literal row/cell grid.
type TableData struct {
	Rows      [][]string `json:"rows" bson:"rows"`
	HeaderRow bool       `json:"headerRow" bson:"header_row"`
}

// ListData is the payload of a list block.
type ListData struct {
	Items       []string `json:"items" bson:"items"`
	Ordered     bool     `json:"ordered" bson:"ordered"`
	ItemSpacing float64  `json:"itemSpacing,omitempty" bson:"item_spacing,omitempty"`
}

// =============================================================================
// Block - The Unit of Placement
// =============================================================================

// Block is one placeable visual unit on the canvas.
//
// A block with a non-empty ParentID is owned by exactly one group block and
// its layout coordinates are relative to that group's own position. Only one
// nesting level is supported: a group's own ParentID is always empty.
type Block struct {
	ID      string `json:"id" bson:"id"`
	Type    Type   `json:"type" bson:"type"`
	Name    string `json:"name" bson:"name"`
	Content string `json:"content,omitempty" bson:"content,omitempty"`

	Layout Layout `json:"layout" bson:"layout"`
	Style  Style  `json:"style" bson:"style"`
	Anchor Anchor `json:"anchor" bson:"anchor"`

	Locked   bool   `json:"locked,omitempty" bson:"locked,omitempty"`
	Visible  bool   `json:"visible" bson:"visible"`
	ParentID string `json:"parentId,omitempty" bson:"parent_id,omitempty"`

	// Type-specific payloads; only the one matching Type is set.
	Social *SocialData `json:"social,omitempty" bson:"social,omitempty"`
	Table  *TableData  `json:"table,omitempty" bson:"table,omitempty"`
	List   *ListData   `json:"list,omitempty" bson:"list,omitempty"`
}

// IsGroup returns true if this block is a group container.
func (b *Block) IsGroup() bool { return b.Type == TypeGroup }

// IsTopLevel returns true if this block has no parent group.
func (b *Block) IsTopLevel() bool { return b.ParentID == "" }

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	out := *b
	out.Style = b.Style.Clone()
	if b.Social != nil {
		social := *b.Social
		social.Links = append([]SocialLink(nil), b.Social.Links...)
		out.Social = &social
	}
	if b.Table != nil {
		table := *b.Table
		table.Rows = make([][]string, len(b.Table.Rows))
		for i, row := range b.Table.Rows {
			table.Rows[i] = append([]string(nil), row...)
		}
		out.Table = &table
	}
	if b.List != nil {
		list := *b.List
		list.Items = append([]string(nil), b.List.Items...)
		out.List = &list
	}
	return &out
}

// =============================================================================
// Canvas Settings
// =============================================================================

// CanvasSettings is the frame the constraint engine resizes against.
type CanvasSettings struct {
	Width           float64 `json:"width" bson:"width"`
	BackgroundColor string  `json:"backgroundColor" bson:"background_color"`
}

// DefaultCanvas returns the standard email canvas: 600px wide, white.
func DefaultCanvas() CanvasSettings {
	return CanvasSettings{Width: 600, BackgroundColor: "#ffffff"}
}
