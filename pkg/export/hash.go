package export

import (
	"encoding/json"

	"github.com/SharadhNaidu/mailcanvas/pkg/cache"
	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// ContentHash digests everything the compiler reads: canvas settings, the
// token table, and the block set. Documents with equal hashes compile to
// byte-identical markup, so the hash is a safe artifact-cache key.
func ContentHash(d *document.Document) string {
	payload := struct {
		Canvas document.CanvasSettings `json:"canvas"`
		Tokens []document.Token        `json:"tokens"`
		Blocks []*document.Block       `json:"blocks"`
	}{
		Canvas: d.Canvas,
		Tokens: d.Tokens(),
		Blocks: d.Blocks(),
	}
	raw, _ := json.Marshal(payload)
	return cache.Hash(raw)
}
