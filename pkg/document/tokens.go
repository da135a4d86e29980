package document

import "strings"

// TokenKind distinguishes the value space of a design token.
type TokenKind string

// Token kinds.
const (
	TokenColor TokenKind = "color"
	TokenFont  TokenKind = "font"
)

// TokenRefPrefix is the sentinel marking a style or content value as an
// indirect reference to a design token. A value of the form "token:<id>"
// resolves via lookup; absence of the prefix means "literal value".
const TokenRefPrefix = "token:"

// Token is a named, reusable design value referenced indirectly from style
// and content fields.
type Token struct {
	ID    string    `json:"id" bson:"id"`
	Name  string    `json:"name" bson:"name"`
	Value string    `json:"value" bson:"value"`
	Kind  TokenKind `json:"kind" bson:"kind"`
}

// TokenRef builds a reference string for the given token id.
func TokenRef(id string) string {
	return TokenRefPrefix + id
}

// IsTokenRef reports whether a value is a token reference.
func IsTokenRef(value string) bool {
	return strings.HasPrefix(value, TokenRefPrefix)
}

// ResolveToken resolves a possibly-indirect value against a token table.
// Literal values pass through unchanged. A dangling reference falls back to
// the raw reference string so the breakage stays visible instead of being
// silently dropped.
func ResolveToken(value string, tokens map[string]Token) string {
	if !IsTokenRef(value) {
		return value
	}
	id := strings.TrimPrefix(value, TokenRefPrefix)
	if tok, ok := tokens[id]; ok {
		return tok.Value
	}
	return value
}
