// Package searcher implements the two Monte Carlo Tree Search engines
// that drive Fanorona move selection: a wall-clock-bounded UCT rollout
// search and an iteration-bounded PUCT search guided by an evaluator.
package searcher

import "fanorona/game"

// NodeHandle indexes a Node within an Arena. NoParent marks the root.
type NodeHandle int

const NoParent NodeHandle = -1

// Node is a tree node shared by the UCT and PUCT engines. Rather than
// reference-counted parent/child pointers, nodes live in a flat Arena
// and refer to each other by integer handle: this removes the
// possibility of reference cycles and keeps the tree cache-local.
// Neither engine needs a per-node lock: both run a single search
// sequentially, so nothing needs synchronizing across goroutines.
type Node struct {
	Parent   NodeHandle
	Children []NodeHandle

	// IsRoot marks the sentinel root node; its Action field is unused.
	IsRoot bool
	Action game.Action

	// Player is the side the node's statistics are credited to. The
	// UCT engine sets it to the side that made the move producing this
	// node from its parent. The PUCT engine sets it to the side to move
	// in the node's position: a capture keeps the parent's Player, any
	// other action passes to the opponent. Both give the root the side
	// to move.
	Player game.CellState

	Visits           int
	AccumulatedValue float64

	// PUCT-only fields; zero-valued and unused by the UCT engine.
	Prior            float64
	ValueFromNetwork float64
	Expanded         bool
}

// Arena owns a flat slice of nodes, addressed by handle. A fresh Arena
// is built for every choose_action call; nothing persists across
// decisions.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{nodes: make([]Node, 0, 64)}
}

// NewRoot creates the arena's root node. It must be the first node created.
func (a *Arena) NewRoot(player game.CellState) NodeHandle {
	a.nodes = append(a.nodes, Node{Parent: NoParent, IsRoot: true, Player: player})
	return NodeHandle(len(a.nodes) - 1)
}

// NewChild appends a child of parent and links it into parent's children list.
func (a *Arena) NewChild(parent NodeHandle, action game.Action, player game.CellState) NodeHandle {
	a.nodes = append(a.nodes, Node{Parent: parent, Action: action, Player: player})
	child := NodeHandle(len(a.nodes) - 1)
	a.nodes[parent].Children = append(a.nodes[parent].Children, child)
	return child
}

// Get returns a pointer to the node at h for in-place mutation.
func (a *Arena) Get(h NodeHandle) *Node {
	return &a.nodes[h]
}

// Root returns the arena's root handle.
func (a *Arena) Root() NodeHandle {
	return 0
}
