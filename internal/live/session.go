// Package live runs interactive editing sessions over WebSocket. Every
// connection owns one editor; each accepted message is answered with the
// resulting state and an SVG rendering of it.
package live

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/editor"
	"github.com/gielis/iconmaker/internal/export"
)

// defaultTemplate is the shape a preset is applied to on an empty canvas.
var defaultTemplate = document.Shape{
	CX:          document.CanvasCenter,
	CY:          document.CanvasCenter,
	Radius:      100,
	FillColor:   "#FF6B6B",
	StrokeColor: "#000000",
	StrokeWidth: 2,
}

// Session is the editor state behind one connection.
type Session struct {
	ID      string
	editor  *editor.Editor
	svgSize int
}

func NewSession(id string, svgSize int) *Session {
	if svgSize <= 0 {
		svgSize = export.DefaultSVGSize
	}
	return &Session{ID: id, editor: editor.New(), svgSize: svgSize}
}

// Handle applies msg to the editor and returns the replies to send back,
// in order. Rejected messages produce a single error reply and leave the
// state unchanged.
func (s *Session) Handle(msg *Message) []*Message {
	var replies []*Message
	hit, err := s.apply(msg)
	if err != nil {
		return []*Message{s.reply(TypeError, msg.Seq, ErrorPayload{Message: err.Error()})}
	}
	if msg.Type == TypeHitTest {
		replies = append(replies, s.reply(TypeHit, msg.Seq, HitPayload{Index: hit}))
	}
	state, err := s.State()
	if err != nil {
		return append(replies, s.reply(TypeError, msg.Seq, ErrorPayload{Message: err.Error()}))
	}
	return append(replies, s.reply(TypeState, msg.Seq, state))
}

func (s *Session) apply(msg *Message) (int, error) {
	e := s.editor
	switch msg.Type {
	case TypeShapeAdd:
		var p ShapePayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		if err := p.Shape.Validate(); err != nil {
			return 0, err
		}
		e.Add(p.Shape)

	case TypeShapeUpdate:
		var p UpdatePayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		if err := p.Shape.Validate(); err != nil {
			return 0, err
		}
		return 0, e.Update(p.Index, p.Shape)

	case TypeShapeDelete:
		var p IndexPayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		return 0, e.Delete(p.Index)

	case TypeShapeMove:
		var p MovePayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		return 0, e.Move(p.From, p.To)

	case TypeShapeSelect:
		var p IndexPayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		return 0, e.Select(p.Index)

	case TypePresetApply:
		var p PresetPayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		template := defaultTemplate
		if p.Template != nil {
			template = *p.Template
		}
		return 0, e.ApplyPreset(p.Name, template)

	case TypeDemoLoad:
		var p DemoPayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		return 0, e.LoadDemo(p.Key)

	case TypeDemoRandom:
		var p RandomPayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		e.RandomDemo(p.Seed)

	case TypeDocumentImport:
		var p ImportPayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		return 0, e.Import(p.Document)

	case TypeDocumentClear:
		e.Clear()

	case TypeHitTest:
		var p PointPayload
		if err := decode(msg, &p); err != nil {
			return 0, err
		}
		i, _ := e.SelectAt(p.X, p.Y)
		return i, nil

	default:
		return 0, fmt.Errorf("unknown message type: %s", msg.Type)
	}
	return 0, nil
}

// State snapshots the editor.
func (s *Session) State() (StatePayload, error) {
	shapes := s.editor.Shapes()
	var buf bytes.Buffer
	if err := export.WriteSVG(&buf, shapes, s.svgSize); err != nil {
		return StatePayload{}, err
	}
	return StatePayload{
		Shapes:   shapes,
		Selected: s.editor.Selected(),
		Bounds:   s.editor.SelectionBounds(),
		SVG:      buf.String(),
	}, nil
}

func (s *Session) reply(typ string, seq int64, payload any) *Message {
	data, err := json.Marshal(payload)
	if err != nil {
		data, _ = json.Marshal(ErrorPayload{Message: err.Error()})
		typ = TypeError
	}
	return &Message{Type: typ, SessionID: s.ID, Seq: seq, Payload: data}
}

func decode(msg *Message, v any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%s: missing payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%s: invalid payload: %w", msg.Type, err)
	}
	return nil
}
