package searcher

import "draughts/game"

// node is one tree position. Parent and children are arena indices rather
// than pointers; the untried-move list is owned solely by the arena and
// shrinks as the node expands. A node with no untried moves and no children
// is terminal.
type node struct {
	board    game.Board
	team     game.Team // Side to move at this node
	parent   int32     // -1 for the root
	move     game.Move // Move that produced this node
	children []int32
	visits   int
	rewards  float64
	untried  []game.Move
}

type arena struct {
	nodes []node
}

func (a *arena) add(n node) int32 {
	a.nodes = append(a.nodes, n)
	return int32(len(a.nodes) - 1)
}
