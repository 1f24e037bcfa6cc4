package compositor

import (
	"fmt"
	"strings"
)

// channelRoute connects one node's output channel to another node's input
// channel inside a workspace.
type channelRoute struct {
	outNode    string
	outChannel int
	inNode     string
	inChannel  int
}

// WorkspaceDefinition is the blueprint of a workspace: which textures it
// shares across nodes, how node channels connect, and which node receives
// the final render target. Node names are only resolved against the
// manager's definitions when a workspace is instantiated.
type WorkspaceDefinition struct {
	name           string
	globalTextures []TextureDefinition
	routes         []channelRoute
	outputNode     string
	outputChannel  int
	hasOutput      bool
}

// NewWorkspaceDefinition creates an empty workspace definition.
func NewWorkspaceDefinition(name string) *WorkspaceDefinition {
	return &WorkspaceDefinition{name: name}
}

// Name returns the definition's registry name.
func (d *WorkspaceDefinition) Name() string {
	return d.name
}

// AddGlobalTexture declares a texture shared by every node in the workspace.
// Global texture names must carry the global_ prefix.
func (d *WorkspaceDefinition) AddGlobalTexture(def TextureDefinition) error {
	if !strings.HasPrefix(def.Name, GlobalTexturePrefix) {
		return fmt.Errorf("workspace %q: global texture %q must use the %q prefix", d.name, def.Name, GlobalTexturePrefix)
	}
	for _, t := range d.globalTextures {
		if t.Name == def.Name {
			return fmt.Errorf("workspace %q: duplicate global texture %q", d.name, def.Name)
		}
	}
	d.globalTextures = append(d.globalTextures, def)
	return nil
}

// Connect routes outNode's output channel to inNode's input channel.
func (d *WorkspaceDefinition) Connect(outNode string, outChannel int, inNode string, inChannel int) {
	d.routes = append(d.routes, channelRoute{
		outNode:    outNode,
		outChannel: outChannel,
		inNode:     inNode,
		inChannel:  inChannel,
	})
}

// ConnectOutput routes the workspace's final render target to inNode's input
// channel. A later call replaces the previous connection.
func (d *WorkspaceDefinition) ConnectOutput(inNode string, channel int) {
	d.outputNode = inNode
	d.outputChannel = channel
	d.hasOutput = true
}

// nodeNames returns every node name the definition references.
func (d *WorkspaceDefinition) nodeNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, r := range d.routes {
		add(r.outNode)
		add(r.inNode)
	}
	add(d.outputNode)
	return names
}

// FinalTarget is the render target a workspace presents its result to. It is
// satisfied by *render.FramebufferTarget.
type FinalTarget interface {
	Bind() error
	Resolve()
}

// Workspace is a live instance of a WorkspaceDefinition bound to a final
// target. Pass execution against the bound target is driven externally; the
// workspace owns target binding and the end-of-frame resolve.
type Workspace struct {
	def    *WorkspaceDefinition
	target FinalTarget

	// Enabled workspaces participate in Manager.Update and
	// Manager.SwapAllFinalTargets.
	Enabled bool
}

// Definition returns the definition the workspace was instantiated from.
func (w *Workspace) Definition() *WorkspaceDefinition {
	return w.def
}

// FinalTarget returns the target the workspace presents to.
func (w *Workspace) FinalTarget() FinalTarget {
	return w.target
}

// Update prepares the workspace for a frame by binding its final target.
// Disabled workspaces are skipped.
func (w *Workspace) Update() error {
	if !w.Enabled {
		return nil
	}
	if err := w.target.Bind(); err != nil {
		return fmt.Errorf("workspace %q: bind final target: %w", w.def.name, err)
	}
	return nil
}

// SwapFinalTarget resolves the final target at end of frame.
func (w *Workspace) SwapFinalTarget() {
	if !w.Enabled {
		return
	}
	w.target.Resolve()
}
