package live

import (
	"encoding/json"

	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/engine"
)

// MaxMessageSize bounds a single frame in either direction. A state frame
// carries every shape plus the rendered SVG, which for busy documents is
// well past the 32 KiB default read limit of websocket clients, so
// peers must raise their limit to match.
const MaxMessageSize = 1 << 20

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client to server
	TypeShapeAdd       = "shape.add"
	TypeShapeUpdate    = "shape.update"
	TypeShapeDelete    = "shape.delete"
	TypeShapeMove      = "shape.move"
	TypeShapeSelect    = "shape.select"
	TypePresetApply    = "preset.apply"
	TypeDemoLoad       = "demo.load"
	TypeDemoRandom     = "demo.random"
	TypeDocumentImport = "document.import"
	TypeDocumentClear  = "document.clear"
	TypeHitTest        = "hit.test"

	// Server to client
	TypeWelcome = "welcome"
	TypeState   = "state"
	TypeHit     = "hit"
	TypeError   = "error"
)

type ShapePayload struct {
	Shape document.Shape `json:"shape"`
}

type UpdatePayload struct {
	Index int            `json:"index"`
	Shape document.Shape `json:"shape"`
}

type IndexPayload struct {
	Index int `json:"index"`
}

type MovePayload struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// PresetPayload names a preset. Template is used when the editor is empty.
type PresetPayload struct {
	Name     string          `json:"name"`
	Template *document.Shape `json:"template,omitempty"`
}

type DemoPayload struct {
	Key string `json:"key"`
}

type RandomPayload struct {
	Seed uint32 `json:"seed"`
}

type ImportPayload struct {
	Document json.RawMessage `json:"document"`
}

type PointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type HitPayload struct {
	Index int `json:"index"`
}

// StatePayload is the full editor state after each accepted message.
type StatePayload struct {
	Shapes   []document.Shape `json:"shapes"`
	Selected int              `json:"selected"`
	Bounds   engine.Rect      `json:"bounds"`
	SVG      string           `json:"svg"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
