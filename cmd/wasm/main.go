//go:build js && wasm

package main

import (
	"bytes"
	"encoding/json"
	"syscall/js"

	"github.com/gielis/iconmaker/internal/colors"
	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/editor"
	"github.com/gielis/iconmaker/internal/engine"
	"github.com/gielis/iconmaker/internal/export"
)

var (
	ed       *editor.Editor
	exporter *export.Exporter
)

// template is the shape a preset is applied to on an empty canvas.
var template = document.Shape{
	CX:          document.CanvasCenter,
	CY:          document.CanvasCenter,
	Radius:      100,
	FillColor:   colors.DefaultPalette[0],
	StrokeColor: "#000000",
	StrokeWidth: 2,
}

func main() {
	ed = editor.New()
	exporter = export.NewExporter(nil, 0)

	api := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	api.Set("loadDocument", js.FuncOf(loadDocument))
	api.Set("loadDemo", js.FuncOf(loadDemo))
	api.Set("randomDemo", js.FuncOf(randomDemo))
	api.Set("addShape", js.FuncOf(addShape))
	api.Set("updateShape", js.FuncOf(updateShape))
	api.Set("deleteShape", js.FuncOf(deleteShape))
	api.Set("moveShape", js.FuncOf(moveShape))
	api.Set("translateShape", js.FuncOf(translateShape))
	api.Set("selectShape", js.FuncOf(selectShape))
	api.Set("selectAt", js.FuncOf(selectAt))
	api.Set("applyPreset", js.FuncOf(applyPreset))
	api.Set("clear", js.FuncOf(clearShapes))

	// --- Queries (frontend ← editor) ---
	api.Set("render", js.FuncOf(render))
	api.Set("hitTest", js.FuncOf(hitTest))
	api.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	api.Set("getSelection", js.FuncOf(getSelection))
	api.Set("getDocument", js.FuncOf(getDocument))
	api.Set("exportSVG", js.FuncOf(exportSVG))
	api.Set("exportICO", js.FuncOf(exportICO))
	api.Set("exportPNG", js.FuncOf(exportPNG))
	api.Set("randomPalette", js.FuncOf(randomPalette))

	js.Global().Set("iconmakerEngine", api)
	js.Global().Set("iconmakerWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func ok() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func fail(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func failMsg(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func parseShape(v js.Value) (document.Shape, error) {
	var s document.Shape
	if err := json.Unmarshal([]byte(v.String()), &s); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return failMsg("missing document JSON")
	}
	if err := ed.Import([]byte(args[0].String())); err != nil {
		return fail(err)
	}
	return ok()
}

func loadDemo(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return failMsg("missing demo key")
	}
	if err := ed.LoadDemo(args[0].String()); err != nil {
		return fail(err)
	}
	return ok()
}

func randomDemo(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return failMsg("missing seed")
	}
	ed.RandomDemo(uint32(args[0].Int()))
	return ok()
}

func addShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return failMsg("missing shape JSON")
	}
	s, err := parseShape(args[0])
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(ed.Add(s))
}

func updateShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return failMsg("missing index or shape JSON")
	}
	s, err := parseShape(args[1])
	if err != nil {
		return fail(err)
	}
	if err := ed.Update(args[0].Int(), s); err != nil {
		return fail(err)
	}
	return ok()
}

func deleteShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return failMsg("missing index")
	}
	if err := ed.Delete(args[0].Int()); err != nil {
		return fail(err)
	}
	return ok()
}

func moveShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return failMsg("missing from or to index")
	}
	if err := ed.Move(args[0].Int(), args[1].Int()); err != nil {
		return fail(err)
	}
	return ok()
}

func translateShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return failMsg("missing index or offset")
	}
	if err := ed.Translate(args[0].Int(), args[1].Float(), args[2].Float()); err != nil {
		return fail(err)
	}
	return ok()
}

func selectShape(this js.Value, args []js.Value) interface{} {
	i := -1
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		i = args[0].Int()
	}
	if err := ed.Select(i); err != nil {
		return fail(err)
	}
	return ok()
}

func selectAt(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(-1)
	}
	i, _ := ed.SelectAt(args[0].Float(), args[1].Float())
	return js.ValueOf(i)
}

func applyPreset(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return failMsg("missing preset name")
	}
	if err := ed.ApplyPreset(args[0].String(), template); err != nil {
		return fail(err)
	}
	return ok()
}

func clearShapes(this js.Value, args []js.Value) interface{} {
	ed.Clear()
	return ok()
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	steps := engine.RenderSteps
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		steps = args[0].Int()
	}
	out, err := engine.DrawCommandsToJSON(ed.DrawCommands(steps))
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(out)
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(-1)
	}
	return js.ValueOf(ed.HitTest(args[0].Float(), args[1].Float()))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(ed.SelectionBounds())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Selected())
}

func getDocument(this js.Value, args []js.Value) interface{} {
	data, err := ed.Export()
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(string(data))
}

func exportSVG(this js.Value, args []js.Value) interface{} {
	size := export.DefaultSVGSize
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		size = args[0].Int()
	}
	var buf bytes.Buffer
	if err := exporter.SVG(&buf, ed.Shapes(), size); err != nil {
		return fail(err)
	}
	return js.ValueOf(buf.String())
}

func exportICO(this js.Value, args []js.Value) interface{} {
	var buf bytes.Buffer
	if err := exporter.ICO(&buf, ed.Shapes()); err != nil {
		return fail(err)
	}
	return toUint8Array(buf.Bytes())
}

func exportPNG(this js.Value, args []js.Value) interface{} {
	size := export.DefaultTouchIconSize
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		size = args[0].Int()
	}
	var buf bytes.Buffer
	if err := exporter.PNG(&buf, ed.Shapes(), size); err != nil {
		return fail(err)
	}
	return toUint8Array(buf.Bytes())
}

func randomPalette(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return failMsg("missing seed")
	}
	data, err := json.Marshal(colors.RandomPalette(uint32(args[0].Int())))
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(string(data))
}

func toUint8Array(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}
