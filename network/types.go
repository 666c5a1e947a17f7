package network

import "errors"

// Sentinel errors for network construction.
var (
	// ErrShapeMismatch indicates Edges, Rates and Labels disagree in length.
	ErrShapeMismatch = errors.New("network: edges, rates and labels differ in length")

	// ErrNeighborOutOfRange indicates an adjacency entry outside [0, N).
	ErrNeighborOutOfRange = errors.New("network: neighbor id out of range")

	// ErrNegativeRate indicates a node with a rate below zero.
	ErrNegativeRate = errors.New("network: negative rate")

	// ErrTooManyActivatable indicates more activatable nodes than a bitset.Set64 holds.
	ErrTooManyActivatable = errors.New("network: too many activatable nodes")

	// ErrEmptyLabel indicates a vertex label is the empty string.
	ErrEmptyLabel = errors.New("network: label is empty")

	// ErrDuplicateLabel indicates a vertex was defined twice.
	ErrDuplicateLabel = errors.New("network: duplicate label")

	// ErrUnknownLabel indicates a label that was referenced but never defined.
	ErrUnknownLabel = errors.New("network: unknown label")

	// ErrSyntax indicates a malformed line in a valve report.
	ErrSyntax = errors.New("network: syntax error")
)

// Network is a dense adjacency list with a reward rate per node.
//
// Edges[v] lists the neighbours of v in input order; Rates[v] is the reward
// per minute once v is activated (0 for non-activatable nodes). Labels[v]
// is the human-readable name of v and may be empty when built from raw
// tables.
type Network struct {
	edges  [][]int
	rates  []int64
	labels []string

	ids   map[string]int // label → node id (labelled networks only)
	index []int          // node id → small index, -1 when not activatable
	nodes []int          // small index → node id
}
