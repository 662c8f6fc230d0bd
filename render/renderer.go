package render

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
)

// Options configure a Renderer.
type Options struct {
	Width, Height int
	MSAASamples   int
	ShaderSource  []byte
	Compiler      ShaderCompiler
	Textures      Textures
	Fonts         Fonts
	Logger        *log.Logger
}

// FrameStats describes the last drawn frame.
type FrameStats struct {
	Items     int
	Pipelines int
	DrawCalls int
	Texts     int
}

// Renderer draws a world through the extract, prepare, queue and render stages.
type Renderer struct {
	opts        Options
	resources   *Resources
	phase       Phase
	draws       DrawFunctions
	meshDraw    DrawFunctionID
	spriteDraw  DrawFunctionID
	extracted   Extracted
	stats       FrameStats
	queueFailed bool
	logger      *log.Logger
}

// New creates a renderer. The shader is compiled on the first queued mesh.
func New(opts Options) *Renderer {
	if opts.Compiler == nil {
		opts.Compiler = EbitenCompiler
	}
	if opts.MSAASamples < 1 {
		opts.MSAASamples = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	r := &Renderer{
		opts:   opts,
		logger: opts.Logger,
		resources: &Resources{
			View:      ViewUniform{Width: float32(opts.Width), Height: float32(opts.Height)},
			Pipelines: NewPipelineCache(ColoredMeshDescriptor, opts.Compiler, opts.ShaderSource),
			Meshes:    make(map[ecs.Entity]*PreparedMesh),
			Sprites:   make(map[ecs.Entity]ExtractedSprite),
			Textures:  opts.Textures,
		},
	}
	r.meshDraw = r.draws.Add("colored_mesh", DrawColoredMesh)
	r.spriteDraw = r.draws.Add("sprite", SpriteDraw{})
	return r
}

// Extract snapshots the world.
func (r *Renderer) Extract(w *game.World) {
	Extract(w, &r.extracted)
}

// Prepare packs the extracted meshes and uniforms.
func (r *Renderer) Prepare() {
	r.resources.Prepare(&r.extracted)
}

// Queue fills the transparent phase. Meshes whose pipeline cannot be built are
// skipped and the error is returned after the rest are queued.
func (r *Renderer) Queue() error {
	r.phase.Clear()
	var firstErr error
	for _, m := range r.extracted.Meshes {
		id, err := r.resources.Pipelines.Specialize(PipelineKey{
			Topology:    m.Mesh.Topology,
			MSAASamples: r.opts.MSAASamples,
		})
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		r.phase.Add(PhaseItem{
			Entity:       m.Entity,
			SortKey:      m.Transform.Z,
			DrawFunction: r.meshDraw,
			Pipeline:     id,
		})
	}
	for _, s := range r.extracted.Sprites {
		r.phase.Add(PhaseItem{
			Entity:       s.Entity,
			SortKey:      s.Transform.Z,
			DrawFunction: r.spriteDraw,
		})
	}
	r.phase.Sort()
	return firstErr
}

// Render clears target and replays the phase followed by the UI text.
func (r *Renderer) Render(target Target) error {
	target.Fill(game.ClearColor.NRGBA())

	pass := &TrackedPass{Target: target, Resources: r.resources}
	for _, item := range r.phase.Items() {
		fn, ok := r.draws.Get(item.DrawFunction)
		if !ok {
			return fmt.Errorf("draw function %d not registered", item.DrawFunction)
		}
		if err := fn.Draw(pass, item); err != nil {
			return fmt.Errorf("%s: %w", r.draws.Name(item.DrawFunction), err)
		}
	}

	sections := LayoutUI(r.opts.Fonts, &r.extracted, r.opts.Width, r.opts.Height)
	DrawUI(target, sections)

	r.stats = FrameStats{
		Items:     r.phase.Len(),
		Pipelines: r.resources.Pipelines.Len(),
		DrawCalls: pass.DrawCalls,
		Texts:     len(sections),
	}
	return nil
}

// Draw runs every stage for one frame.
func (r *Renderer) Draw(w *game.World, target Target) error {
	r.Extract(w)
	r.Prepare()
	if err := r.Queue(); err != nil {
		// The sprites still draw without the background.
		if !r.queueFailed {
			r.logger.Error("queue background", "err", err)
		}
		r.queueFailed = true
	} else {
		r.queueFailed = false
	}
	return r.Render(target)
}

// ReloadShader swaps the background shader. The old shader stays on failure.
func (r *Renderer) ReloadShader(src []byte) error {
	if err := r.resources.Pipelines.Reload(src); err != nil {
		return err
	}
	r.logger.Info("reloaded background shader", "bytes", len(src))
	return nil
}

// Resize updates the view to a new target size.
func (r *Renderer) Resize(width, height int) {
	r.opts.Width, r.opts.Height = width, height
	r.resources.View = ViewUniform{Width: float32(width), Height: float32(height)}
}

// Stats returns the statistics of the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Phase returns the queued phase items in draw order.
func (r *Renderer) Phase() []PhaseItem {
	return r.phase.Items()
}

// Topologies lists the primitive topologies of the specialized pipelines.
func (r *Renderer) Topologies() []geom.Topology {
	var out []geom.Topology
	for i := range r.resources.Pipelines.Len() {
		p, _ := r.resources.Pipelines.Get(PipelineID(i))
		out = append(out, p.Key.Topology)
	}
	return out
}
