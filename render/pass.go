package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/breakout/game"
)

// Bind group indices of the colored mesh pipeline.
const (
	ViewBindGroup = 0
	MeshBindGroup = 1
	TimeBindGroup = 2
)

// ViewUniform maps world coordinates to target pixels.
type ViewUniform struct {
	Width, Height float32
}

// Project converts a world position (origin centered, +y up) to target pixels.
func (v ViewUniform) Project(x, y float32) (float32, float32) {
	return v.Width/2 + x, v.Height/2 - y
}

// TrackedPass holds the state set by render commands while drawing one phase.
type TrackedPass struct {
	Target     Target
	Resources  *Resources
	pipeline   *Pipeline
	bindGroups [3]any
	DrawCalls  int
}

// SetPipeline makes p current.
func (p *TrackedPass) SetPipeline(pl *Pipeline) {
	p.pipeline = pl
}

// Pipeline returns the current pipeline.
func (p *TrackedPass) Pipeline() *Pipeline {
	return p.pipeline
}

// SetBindGroup binds a resource at index.
func (p *TrackedPass) SetBindGroup(index int, group any) {
	p.bindGroups[index] = group
}

// BindGroup returns the resource bound at index.
func (p *TrackedPass) BindGroup(index int) any {
	return p.bindGroups[index]
}

// RenderCommand is one step of a draw function.
type RenderCommand interface {
	Render(pass *TrackedPass, item PhaseItem) error
}

// CommandChain runs render commands in order and stops at the first failure.
type CommandChain []RenderCommand

func (c CommandChain) Draw(pass *TrackedPass, item PhaseItem) error {
	for _, cmd := range c {
		if err := cmd.Render(pass, item); err != nil {
			return err
		}
	}
	return nil
}

// SetItemPipeline binds the pipeline named by the item.
type SetItemPipeline struct{}

func (SetItemPipeline) Render(pass *TrackedPass, item PhaseItem) error {
	pl, ok := pass.Resources.Pipelines.Get(item.Pipeline)
	if !ok {
		return fmt.Errorf("pipeline %d not specialized", item.Pipeline)
	}
	pass.SetPipeline(pl)
	return nil
}

// SetViewBindGroup binds the view uniform.
type SetViewBindGroup struct{}

func (SetViewBindGroup) Render(pass *TrackedPass, item PhaseItem) error {
	pass.SetBindGroup(ViewBindGroup, pass.Resources.View)
	return nil
}

// SetMeshBindGroup binds the item's model transform.
type SetMeshBindGroup struct{}

func (SetMeshBindGroup) Render(pass *TrackedPass, item PhaseItem) error {
	mesh, ok := pass.Resources.Meshes[item.Entity]
	if !ok {
		return fmt.Errorf("mesh for %s %d not prepared", game.KindOf(item.Entity), item.Entity.Index())
	}
	pass.SetBindGroup(MeshBindGroup, mesh)
	return nil
}

// SetTimeBindGroup binds the time uniform.
type SetTimeBindGroup struct{}

func (SetTimeBindGroup) Render(pass *TrackedPass, item PhaseItem) error {
	if pass.Resources.TimeBindGroup == nil {
		return fmt.Errorf("time bind group not queued")
	}
	pass.SetBindGroup(TimeBindGroup, pass.Resources.TimeBindGroup)
	return nil
}

// DrawMesh issues the indexed draw for the bound mesh.
type DrawMesh struct{}

func (DrawMesh) Render(pass *TrackedPass, item PhaseItem) error {
	view, _ := pass.BindGroup(ViewBindGroup).(ViewUniform)
	mesh, ok := pass.BindGroup(MeshBindGroup).(*PreparedMesh)
	if !ok {
		return fmt.Errorf("no mesh bound")
	}
	uniforms, _ := pass.BindGroup(TimeBindGroup).(map[string]any)
	pl := pass.Pipeline()
	if pl == nil {
		return fmt.Errorf("no pipeline bound")
	}

	vertices := mesh.ScreenVertices(view)
	pass.Target.DrawTrianglesShader(vertices, mesh.Indices, pl.Shader, &ebiten.DrawTrianglesShaderOptions{
		Uniforms:  uniforms,
		Blend:     pl.Descriptor.Blend,
		AntiAlias: pl.Descriptor.Samples > 1,
	})
	pass.DrawCalls++
	return nil
}

// DrawColoredMesh is the draw function for colored background meshes.
var DrawColoredMesh = CommandChain{
	SetItemPipeline{},
	SetViewBindGroup{},
	SetMeshBindGroup{},
	SetTimeBindGroup{},
	DrawMesh{},
}
