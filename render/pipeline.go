package render

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/breakout/geom"
)

// ErrShaderCompile is returned when shader source fails to compile.
var ErrShaderCompile = errors.New("shader compile failed")

// PipelineKey selects a pipeline variant.
type PipelineKey struct {
	Topology    geom.Topology
	MSAASamples int
}

// PipelineID indexes a specialized pipeline in a cache.
type PipelineID int

// BindGroupLayout names the resources bound at one bind group index.
type BindGroupLayout struct {
	Label   string
	Entries []string
}

// PipelineDescriptor is the full description of one pipeline variant.
type PipelineDescriptor struct {
	Label      string
	Layout     VertexLayout
	BindGroups []BindGroupLayout
	Topology   geom.Topology
	Samples    int
	Blend      ebiten.Blend
}

// Pipeline is a specialized descriptor with its compiled shader.
type Pipeline struct {
	ID         PipelineID
	Key        PipelineKey
	Descriptor PipelineDescriptor
	Shader     *ebiten.Shader
}

// ShaderCompiler turns shader source into a shader object.
type ShaderCompiler func(src []byte) (*ebiten.Shader, error)

// ColoredMeshDescriptor specializes the colored mesh pipeline for a key.
func ColoredMeshDescriptor(key PipelineKey) PipelineDescriptor {
	return PipelineDescriptor{
		Label:  "colored_mesh2d_pipeline",
		Layout: ColoredMeshLayout,
		BindGroups: []BindGroupLayout{
			{Label: "view", Entries: []string{"view"}},
			{Label: "mesh", Entries: []string{"transform"}},
			{Label: "time", Entries: []string{"Time"}},
		},
		Topology: key.Topology,
		Samples:  key.MSAASamples,
		Blend:    ebiten.BlendSourceOver,
	}
}

// PipelineCache specializes and compiles pipelines once per key.
type PipelineCache struct {
	specialize func(PipelineKey) PipelineDescriptor
	compile    ShaderCompiler
	source     []byte
	shader     *ebiten.Shader
	compiled   bool
	byKey      map[PipelineKey]PipelineID
	pipelines  []*Pipeline
}

// NewPipelineCache creates a cache. Shader source is compiled lazily on the first
// specialization.
func NewPipelineCache(specialize func(PipelineKey) PipelineDescriptor, compile ShaderCompiler, source []byte) *PipelineCache {
	return &PipelineCache{
		specialize: specialize,
		compile:    compile,
		source:     source,
		byKey:      make(map[PipelineKey]PipelineID),
	}
}

// Specialize returns the pipeline for key, building it on first use.
func (c *PipelineCache) Specialize(key PipelineKey) (PipelineID, error) {
	if id, ok := c.byKey[key]; ok {
		return id, nil
	}
	if !c.compiled {
		shader, err := c.compile(c.source)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrShaderCompile, err)
		}
		c.shader = shader
		c.compiled = true
	}

	id := PipelineID(len(c.pipelines))
	c.pipelines = append(c.pipelines, &Pipeline{
		ID:         id,
		Key:        key,
		Descriptor: c.specialize(key),
		Shader:     c.shader,
	})
	c.byKey[key] = id
	return id, nil
}

// Get returns a specialized pipeline.
func (c *PipelineCache) Get(id PipelineID) (*Pipeline, bool) {
	if id < 0 || int(id) >= len(c.pipelines) {
		return nil, false
	}
	return c.pipelines[id], true
}

// Len returns the number of specialized pipelines.
func (c *PipelineCache) Len() int {
	return len(c.pipelines)
}

// Reload compiles new source and swaps it into every pipeline. On failure the
// previous shader stays in use.
func (c *PipelineCache) Reload(src []byte) error {
	shader, err := c.compile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	old := c.shader
	c.source = src
	c.shader = shader
	c.compiled = true
	for _, p := range c.pipelines {
		p.Shader = shader
	}
	if old != nil && old != shader {
		old.Deallocate()
	}
	return nil
}

// EbitenCompiler compiles Kage source.
func EbitenCompiler(src []byte) (*ebiten.Shader, error) {
	return ebiten.NewShader(src)
}
