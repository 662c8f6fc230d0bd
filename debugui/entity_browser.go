package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	Entity   ecs.Entity
	Kind     game.Kind
	Position geom.Vec2
	Z        float32
}

// Sort columns of the entity table.
const (
	ColumnEntity = iota
	ColumnKind
	ColumnPosition
	ColumnZ
)

// EntityBrowser lists the live entities of a world.
type EntityBrowser struct {
	rows          []EntityInfo
	selected      ecs.Entity
	filterText    string
	sortColumn    int
	sortAscending bool
	perPage       int
	page          int
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{sortAscending: true, perPage: perPage}
}

// Refresh rebuilds the rows from w.
func (eb *EntityBrowser) Refresh(w *game.World) {
	eb.rows = eb.rows[:0]
	for e := range w.Entities() {
		row := EntityInfo{Entity: e, Kind: game.KindOf(e)}
		if t := transformOf(w.Record(e)); t != nil {
			row.Position = t.Translation
			row.Z = t.Z
		}
		eb.rows = append(eb.rows, row)
	}
	eb.sort()
	if eb.selected != 0 && w.Record(eb.selected) == nil {
		eb.selected = 0
	}
}

func transformOf(record any) *game.Transform {
	switch r := record.(type) {
	case *game.Paddle:
		return &r.Transform
	case *game.PaddleEye:
		return &r.Transform
	case *game.Ball:
		return &r.Transform
	case *game.Brick:
		return &r.Transform
	case *game.Wall:
		return &r.Transform
	case *game.Background:
		return &r.Transform
	}
	return nil
}

// SortBy orders the rows by column.
func (eb *EntityBrowser) SortBy(column int, ascending bool) {
	eb.sortColumn = column
	eb.sortAscending = ascending
	eb.sort()
}

func (eb *EntityBrowser) sort() {
	slices.SortStableFunc(eb.rows, func(a, b EntityInfo) int {
		var c int
		switch eb.sortColumn {
		case ColumnKind:
			c = strings.Compare(a.Kind.String(), b.Kind.String())
		case ColumnPosition:
			c = compare(a.Position.Y, b.Position.Y)
			if c == 0 {
				c = compare(a.Position.X, b.Position.X)
			}
		case ColumnZ:
			c = compare(a.Z, b.Z)
		default:
			c = compare(a.Entity, b.Entity)
		}
		if !eb.sortAscending {
			c = -c
		}
		return c
	})
}

func compare[T float32 | ecs.Entity](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SetFilter restricts the rows to those whose kind or index contains text.
func (eb *EntityBrowser) SetFilter(text string) {
	eb.filterText = text
	eb.page = 0
}

// Filtered returns the rows matching the current filter.
func (eb *EntityBrowser) Filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.rows
	}
	filter := strings.ToLower(eb.filterText)
	out := make([]EntityInfo, 0, len(eb.rows))
	for _, row := range eb.rows {
		if strings.Contains(row.Kind.String(), filter) ||
			strings.Contains(fmt.Sprintf("%d", row.Entity.Index()), filter) {
			out = append(out, row)
		}
	}
	return out
}

// Selected returns the selected entity, or zero.
func (eb *EntityBrowser) Selected() ecs.Entity {
	return eb.selected
}

func (eb *EntityBrowser) Select(e ecs.Entity) {
	eb.selected = e
}

func (eb *EntityBrowser) Render(w *game.World) {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.Refresh(w)

	filter := eb.filterText
	if imgui.InputTextWithHint("##search", "Filter by kind...", &filter, imgui.InputTextFlagsNone, nil) {
		eb.SetFilter(filter)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.SetFilter("")
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	rows := eb.Filtered()
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 240), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Z")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
			rows = eb.Filtered()
		}

		start := min(eb.page*eb.perPage, len(rows))
		end := min(start+eb.perPage, len(rows))
		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%s#%d", row.Kind, row.Entity.Index())
			if imgui.SelectableBoolV(label, eb.selected == row.Entity, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.Entity
			}
			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f", row.Position.X, row.Position.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Z))
		}
		imgui.EndTable()
	}

	if len(rows) > eb.perPage {
		pages := (len(rows) + eb.perPage - 1) / eb.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.page > 0 {
			eb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.page < pages-1 {
			eb.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(rows)))
	}

	if imgui.TreeNodeStr("Arenas") {
		renderArenaTable(w.Stats())
		imgui.TreePop()
	}

	imgui.End()
}

func renderArenaTable(stats []ecs.ArenaStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("ArenaTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Kind")
	imgui.TableSetupColumn("Live")
	imgui.TableSetupColumn("Free")
	imgui.TableSetupColumn("High Water")
	imgui.TableSetupColumn("Capacity")
	imgui.TableHeadersRow()

	for _, s := range stats {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(game.Kind(s.Kind).String())
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.Live))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.Free))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.HighWater))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.Capacity))
	}
	imgui.EndTable()
}
