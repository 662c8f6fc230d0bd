package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/game"
)

// Inspector edits the fields of the selected record and the world resources.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (ci *Inspector) Render(w *game.World, selected ecs.Entity) {
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == 0 {
		imgui.Text("No entity selected")
	} else if record := w.Record(selected); record == nil {
		imgui.Text(fmt.Sprintf("Entity %d is gone", selected.Index()))
	} else {
		imgui.Text(fmt.Sprintf("%s #%d", game.KindOf(selected), selected.Index()))
		imgui.Separator()
		renderFields(fmt.Sprintf("e%d", selected), record)
	}

	imgui.Separator()
	if imgui.TreeNodeStr("Scoreboard") {
		renderFields("scoreboard", &w.Scoreboard)
		renderTimer("JustChanged", w.Scoreboard.JustChanged)
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Bonus") {
		renderFields("bonus", &w.Bonus)
		renderTimer("Show", w.Bonus.Show)
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Settings") {
		renderFields("settings", &w.Settings)
		imgui.TreePop()
	}

	imgui.End()
}

func renderTimer(name string, t game.Timer) {
	if v, ok := t.Get(); ok {
		imgui.Text(fmt.Sprintf("%s: %.3f", name, v))
	} else {
		imgui.Text(fmt.Sprintf("%s: off", name))
	}
}

func renderFields(id string, record any) {
	for _, f := range Fields(record) {
		renderField(id, f)
	}
}

func renderField(id string, f Field) {
	label := fmt.Sprintf("##%s.%s", id, f.Path)

	switch f.Value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(f.Value.Convert(reflect.TypeFor[int64]()).Int())
		imgui.Text(fmt.Sprintf("%s:", f.Path))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			_ = f.Set(int64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(f.Value.Float())
		imgui.Text(fmt.Sprintf("%s:", f.Path))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			_ = f.Set(v)
		}

	case reflect.Bool:
		v := f.Value.Bool()
		if imgui.Checkbox(f.Path, &v) {
			_ = f.Set(v)
		}

	case reflect.String:
		v := f.Value.String()
		imgui.Text(fmt.Sprintf("%s:", f.Path))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
			_ = f.Set(v)
		}

	case reflect.Ptr:
		if f.Value.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", f.Path))
		} else {
			imgui.Text(fmt.Sprintf("%s: %s", f.Path, f.Value.Type().Elem()))
		}

	case reflect.Slice, reflect.Map:
		imgui.Text(fmt.Sprintf("%s: [%d items]", f.Path, f.Value.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", f.Path, f.Value.Interface()))
	}
}
