package compositor

import (
	"fmt"
	"strings"

	"github.com/DragonOgre/ogre/core"
	"github.com/DragonOgre/ogre/render"
)

// GlobalTexturePrefix marks texture names owned by the workspace rather than
// a single node. Node-local textures must not use it.
const GlobalTexturePrefix = "global_"

// PassType identifies what a pass does when the pass graph executes it.
type PassType int

const (
	PassScene PassType = iota
	PassQuad
	PassClear
	PassStencil
	PassResolve
)

func (t PassType) String() string {
	switch t {
	case PassScene:
		return "scene"
	case PassQuad:
		return "quad"
	case PassClear:
		return "clear"
	case PassStencil:
		return "stencil"
	case PassResolve:
		return "resolve"
	default:
		return fmt.Sprintf("PassType(%d)", int(t))
	}
}

// PassDefinition describes a single pass inside a target pass. Clear is only
// consulted for PassClear.
type PassDefinition struct {
	Type  PassType
	Clear core.ClearValue
}

// TextureDefinition declares a texture a node or workspace allocates for its
// passes to render into.
type TextureDefinition struct {
	Name    string
	Width   int
	Height  int
	Format  render.PixelFormat
	Samples int
}

// TargetPass groups the passes that render into one named target.
type TargetPass struct {
	TargetName string
	Passes     []PassDefinition
}

// AddPass appends a pass to the target.
func (t *TargetPass) AddPass(pass PassDefinition) {
	t.Passes = append(t.Passes, pass)
}

// NodeDefinition is the reusable blueprint of a compositor node: its input
// channels, the textures it allocates locally, the channels it exports, and
// the passes it runs against its targets.
type NodeDefinition struct {
	name          string
	inputs        []string
	localTextures []TextureDefinition
	outputs       []string
	targets       []*TargetPass
}

// NewNodeDefinition creates an empty node definition with the given name.
func NewNodeDefinition(name string) *NodeDefinition {
	return &NodeDefinition{name: name}
}

// Name returns the definition's registry name.
func (d *NodeDefinition) Name() string {
	return d.name
}

// AddInput declares a new input channel and returns its index.
func (d *NodeDefinition) AddInput(channelName string) (int, error) {
	for _, in := range d.inputs {
		if in == channelName {
			return 0, fmt.Errorf("node %q: duplicate input channel %q", d.name, channelName)
		}
	}
	d.inputs = append(d.inputs, channelName)
	return len(d.inputs) - 1, nil
}

// InputCount returns the number of declared input channels.
func (d *NodeDefinition) InputCount() int {
	return len(d.inputs)
}

// AddLocalTexture declares a texture the node allocates for itself. The
// global_ prefix is reserved for workspace textures.
func (d *NodeDefinition) AddLocalTexture(def TextureDefinition) error {
	if strings.HasPrefix(def.Name, GlobalTexturePrefix) {
		return fmt.Errorf("node %q: local texture %q must not use the %q prefix", d.name, def.Name, GlobalTexturePrefix)
	}
	for _, t := range d.localTextures {
		if t.Name == def.Name {
			return fmt.Errorf("node %q: duplicate local texture %q", d.name, def.Name)
		}
	}
	d.localTextures = append(d.localTextures, def)
	return nil
}

// AddOutput exports a local texture or an input channel on a new output
// channel and returns its index.
func (d *NodeDefinition) AddOutput(name string) (int, error) {
	if !d.hasSource(name) {
		return 0, fmt.Errorf("node %q: output %q is neither a local texture nor an input channel", d.name, name)
	}
	d.outputs = append(d.outputs, name)
	return len(d.outputs) - 1, nil
}

// OutputCount returns the number of exported output channels.
func (d *NodeDefinition) OutputCount() int {
	return len(d.outputs)
}

// AddTargetPass declares a target the node renders into. Passes are appended
// to the returned TargetPass.
func (d *NodeDefinition) AddTargetPass(targetName string) *TargetPass {
	t := &TargetPass{TargetName: targetName}
	d.targets = append(d.targets, t)
	return t
}

// TargetPasses returns the node's target passes in declaration order.
func (d *NodeDefinition) TargetPasses() []*TargetPass {
	return d.targets
}

func (d *NodeDefinition) hasSource(name string) bool {
	for _, t := range d.localTextures {
		if t.Name == name {
			return true
		}
	}
	for _, in := range d.inputs {
		if in == name {
			return true
		}
	}
	return false
}

// ShadowNodeDefinition is a node definition for shadow-map rendering. Shadow
// nodes own all of their textures, so they cannot declare inputs, and they
// stay unfinished until the manager validates them.
type ShadowNodeDefinition struct {
	NodeDefinition
	finished bool
}

// NewShadowNodeDefinition creates an empty shadow-node definition.
func NewShadowNodeDefinition(name string) *ShadowNodeDefinition {
	return &ShadowNodeDefinition{NodeDefinition: NodeDefinition{name: name}}
}

// AddInput always fails: shadow nodes cannot receive channels.
func (d *ShadowNodeDefinition) AddInput(channelName string) (int, error) {
	return 0, fmt.Errorf("shadow node %q: shadow nodes cannot have input channels", d.name)
}

// Finished reports whether the definition has been validated.
func (d *ShadowNodeDefinition) Finished() bool {
	return d.finished
}

// SetFinished marks the definition as validated.
func (d *ShadowNodeDefinition) SetFinished() {
	d.finished = true
}
