package compositor

import (
	"errors"
	"fmt"

	"github.com/DragonOgre/ogre/core"
)

var (
	// ErrNotFound is returned when a definition lookup misses.
	ErrNotFound = errors.New("compositor: definition not found")
	// ErrDuplicateName is returned when a definition name is already taken.
	ErrDuplicateName = errors.New("compositor: duplicate definition name")
	// ErrWorkspacesActive is returned when a removal would strand live
	// workspaces.
	ErrWorkspacesActive = errors.New("compositor: live workspaces still exist")
)

// Manager owns every node, shadow-node, and workspace definition plus the
// live workspaces instantiated from them, and drives per-frame updates.
type Manager struct {
	nodeDefs      map[string]*NodeDefinition
	shadowDefs    map[string]*ShadowNodeDefinition
	workspaceDefs map[string]*WorkspaceDefinition
	workspaces    []*Workspace
	frameCount    uint64
}

// NewManager creates an empty compositor manager.
func NewManager() *Manager {
	return &Manager{
		nodeDefs:      make(map[string]*NodeDefinition),
		shadowDefs:    make(map[string]*ShadowNodeDefinition),
		workspaceDefs: make(map[string]*WorkspaceDefinition),
	}
}

// AddNodeDefinition registers a new node definition and returns it.
func (m *Manager) AddNodeDefinition(name string) (*NodeDefinition, error) {
	if m.nodeDefs[name] != nil || m.shadowDefs[name] != nil {
		return nil, fmt.Errorf("%w: node %q", ErrDuplicateName, name)
	}
	def := NewNodeDefinition(name)
	m.nodeDefs[name] = def
	return def, nil
}

// HasNodeDefinition reports whether a node definition with the name exists.
func (m *Manager) HasNodeDefinition(name string) bool {
	return m.nodeDefs[name] != nil
}

// NodeDefinition looks up a node definition by name.
func (m *Manager) NodeDefinition(name string) (*NodeDefinition, error) {
	def := m.nodeDefs[name]
	if def == nil {
		return nil, fmt.Errorf("%w: node %q", ErrNotFound, name)
	}
	return def, nil
}

// NodeDefinitions returns every registered node definition.
func (m *Manager) NodeDefinitions() []*NodeDefinition {
	defs := make([]*NodeDefinition, 0, len(m.nodeDefs))
	for _, def := range m.nodeDefs {
		defs = append(defs, def)
	}
	return defs
}

// AddShadowNodeDefinition registers a new shadow-node definition and returns
// it. The definition stays unfinished until ValidateAllNodes runs or the
// caller marks it finished.
func (m *Manager) AddShadowNodeDefinition(name string) (*ShadowNodeDefinition, error) {
	if m.nodeDefs[name] != nil || m.shadowDefs[name] != nil {
		return nil, fmt.Errorf("%w: shadow node %q", ErrDuplicateName, name)
	}
	def := NewShadowNodeDefinition(name)
	m.shadowDefs[name] = def
	return def, nil
}

// ShadowNodeDefinition looks up a shadow-node definition by name.
func (m *Manager) ShadowNodeDefinition(name string) (*ShadowNodeDefinition, error) {
	def := m.shadowDefs[name]
	if def == nil {
		return nil, fmt.Errorf("%w: shadow node %q", ErrNotFound, name)
	}
	return def, nil
}

// AddWorkspaceDefinition registers a new workspace definition and returns it.
func (m *Manager) AddWorkspaceDefinition(name string) (*WorkspaceDefinition, error) {
	if m.workspaceDefs[name] != nil {
		return nil, fmt.Errorf("%w: workspace %q", ErrDuplicateName, name)
	}
	def := NewWorkspaceDefinition(name)
	m.workspaceDefs[name] = def
	return def, nil
}

// HasWorkspaceDefinition reports whether a workspace definition with the
// name exists.
func (m *Manager) HasWorkspaceDefinition(name string) bool {
	return m.workspaceDefs[name] != nil
}

// WorkspaceDefinition looks up a workspace definition by name.
func (m *Manager) WorkspaceDefinition(name string) (*WorkspaceDefinition, error) {
	def := m.workspaceDefs[name]
	if def == nil {
		return nil, fmt.Errorf("%w: workspace %q", ErrNotFound, name)
	}
	return def, nil
}

// AddWorkspace instantiates the named workspace definition against a final
// target. Every node the definition references must already be registered.
// The workspace starts enabled.
func (m *Manager) AddWorkspace(defName string, target FinalTarget) (*Workspace, error) {
	def, err := m.WorkspaceDefinition(defName)
	if err != nil {
		return nil, err
	}
	for _, node := range def.nodeNames() {
		if m.nodeDefs[node] == nil && m.shadowDefs[node] == nil {
			return nil, fmt.Errorf("workspace %q references %w: node %q", defName, ErrNotFound, node)
		}
	}
	ws := &Workspace{def: def, target: target, Enabled: true}
	m.workspaces = append(m.workspaces, ws)
	return ws, nil
}

// RemoveWorkspace destroys a live workspace.
func (m *Manager) RemoveWorkspace(ws *Workspace) error {
	for i, w := range m.workspaces {
		if w == ws {
			m.workspaces = append(m.workspaces[:i], m.workspaces[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("compositor: workspace %q is not managed here", ws.def.name)
}

// RemoveAllWorkspaces destroys every live workspace.
func (m *Manager) RemoveAllWorkspaces() {
	m.workspaces = nil
}

// RemoveAllWorkspaceDefinitions removes every workspace definition. Live
// workspaces must be removed first.
func (m *Manager) RemoveAllWorkspaceDefinitions() error {
	if len(m.workspaces) > 0 {
		return fmt.Errorf("%w: remove workspaces before their definitions", ErrWorkspacesActive)
	}
	m.workspaceDefs = make(map[string]*WorkspaceDefinition)
	return nil
}

// RemoveAllNodeDefinitions removes every node definition. Live workspaces
// must be removed first.
func (m *Manager) RemoveAllNodeDefinitions() error {
	if len(m.workspaces) > 0 {
		return fmt.Errorf("%w: remove workspaces before node definitions", ErrWorkspacesActive)
	}
	m.nodeDefs = make(map[string]*NodeDefinition)
	return nil
}

// RemoveAllShadowNodeDefinitions removes every shadow-node definition. Live
// workspaces must be removed first.
func (m *Manager) RemoveAllShadowNodeDefinitions() error {
	if len(m.workspaces) > 0 {
		return fmt.Errorf("%w: remove workspaces before shadow node definitions", ErrWorkspacesActive)
	}
	m.shadowDefs = make(map[string]*ShadowNodeDefinition)
	return nil
}

// ValidateAllNodes finishes every shadow-node definition that is still
// unfinished. Call it after the frame's definitions are complete and before
// workspaces update.
func (m *Manager) ValidateAllNodes() {
	for _, def := range m.shadowDefs {
		if !def.Finished() {
			def.SetFinished()
		}
	}
}

// FrameCount returns the number of Update calls so far.
func (m *Manager) FrameCount() uint64 {
	return m.frameCount
}

// Update advances the frame counter and updates every enabled workspace.
func (m *Manager) Update() error {
	m.frameCount++
	for _, ws := range m.workspaces {
		if err := ws.Update(); err != nil {
			return err
		}
	}
	return nil
}

// SwapAllFinalTargets resolves the final target of every enabled workspace.
// Call it once per frame after rendering.
func (m *Manager) SwapAllFinalTargets() {
	for _, ws := range m.workspaces {
		ws.SwapFinalTarget()
	}
}

// AddBasicWorkspaceDefinition registers a minimal one-node pipeline: the
// node clears the final target and renders the scene into it. It returns
// the workspace definition, ready for AddWorkspace.
func (m *Manager) AddBasicWorkspaceDefinition(workspaceName, nodeName string, clear core.ClearValue) (*WorkspaceDefinition, error) {
	node, err := m.AddNodeDefinition(nodeName)
	if err != nil {
		return nil, err
	}
	if _, err := node.AddInput("rt"); err != nil {
		return nil, err
	}
	target := node.AddTargetPass("rt")
	target.AddPass(PassDefinition{Type: PassClear, Clear: clear})
	target.AddPass(PassDefinition{Type: PassScene})

	def, err := m.AddWorkspaceDefinition(workspaceName)
	if err != nil {
		return nil, err
	}
	def.ConnectOutput(nodeName, 0)
	return def, nil
}
