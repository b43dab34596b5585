// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package treelite

// An Operator is the comparison applied at a numerical split. During
// evaluation a row is sent to the left child when the comparison between its
// feature value and the node threshold holds.
type Operator byte

// Constants defining the valid Operator values.
const (
	OpNone Operator = iota // no comparison (leaf nodes)
	OpEQ                   // equal
	OpLT                   // less than
	OpLE                   // less than or equal
	OpGT                   // greater than
	OpGE                   // greater than or equal
)

var opStr = [...]string{
	OpNone: "none",
	OpEQ:   "==",
	OpLT:   "<",
	OpLE:   "<=",
	OpGT:   ">",
	OpGE:   ">=",
}

func (op Operator) String() string {
	if int(op) >= len(opStr) {
		return "invalid"
	}
	return opStr[op]
}

// noChild marks the child slots of a leaf node.
const noChild = -1

// defaultLeftBit is packed into the split index of a node whose missing
// values follow the left child.
const defaultLeftBit = 1 << 31

// A node is a single tree node. A node is a leaf exactly when cleft == -1.
type node struct {
	cleft, cright int32
	sindex        uint32 // split feature index; the high bit is the default-left flag
	leafValue     float32
	threshold     float32
	gain          float64
	sumHess       float64
	hasGain       bool
	hasSumHess    bool
	cmp           Operator
}

// A Tree is a binary decision tree whose nodes are addressed by dense ids
// starting at 0, the root. The zero value is a tree with no nodes; call Init
// before growing it.
type Tree struct {
	nodes []node
}

// Init resets t to a tree consisting of a single root leaf with value 0.
func (t *Tree) Init() {
	t.nodes = t.nodes[:0]
	t.allocNode()
	t.SetLeaf(0, 0)
}

// allocNode appends a fresh unattached leaf and returns its id.
func (t *Tree) allocNode() int {
	t.nodes = append(t.nodes, node{cleft: noChild, cright: noChild})
	return len(t.nodes) - 1
}

// NumNodes reports the number of nodes allocated in t.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// AddChildren allocates a left and a right child for node nid, in that
// order, so that ids remain dense. The new ids are reported by LeftChild and
// RightChild.
func (t *Tree) AddChildren(nid int) {
	cleft := t.allocNode()
	cright := t.allocNode()
	t.nodes[nid].cleft = int32(cleft)
	t.nodes[nid].cright = int32(cright)
}

// LeftChild reports the id of the left child of nid, or -1 for a leaf.
func (t *Tree) LeftChild(nid int) int { return int(t.nodes[nid].cleft) }

// RightChild reports the id of the right child of nid, or -1 for a leaf.
func (t *Tree) RightChild(nid int) int { return int(t.nodes[nid].cright) }

// IsLeaf reports whether node nid is a leaf.
func (t *Tree) IsLeaf(nid int) bool { return t.nodes[nid].cleft == noChild }

// SetLeaf marks node nid as a leaf producing value. Any children previously
// attached to nid are detached.
func (t *Tree) SetLeaf(nid int, value float32) {
	n := &t.nodes[nid]
	n.leafValue = value
	n.cleft = noChild
	n.cright = noChild
	n.cmp = OpNone
}

// SetNumericalSplit marks node nid as a numerical split on the given feature
// index. A row goes left when its feature value compares true against
// threshold under cmp; rows with a missing value go left when defaultLeft is
// true. The feature index must be below 1<<31.
func (t *Tree) SetNumericalSplit(nid int, featureIndex uint32, threshold float32, defaultLeft bool, cmp Operator) {
	n := &t.nodes[nid]
	n.sindex = featureIndex
	if defaultLeft {
		n.sindex |= defaultLeftBit
	}
	n.threshold = threshold
	n.cmp = cmp
}

// SetGain records the loss change observed at node nid during training.
func (t *Tree) SetGain(nid int, gain float64) {
	t.nodes[nid].gain = gain
	t.nodes[nid].hasGain = true
}

// SetSumHess records the hessian sum observed at node nid during training.
func (t *Tree) SetSumHess(nid int, sumHess float64) {
	t.nodes[nid].sumHess = sumHess
	t.nodes[nid].hasSumHess = true
}

// LeafValue reports the output value of leaf nid.
func (t *Tree) LeafValue(nid int) float32 { return t.nodes[nid].leafValue }

// Threshold reports the split threshold of internal node nid.
func (t *Tree) Threshold(nid int) float32 { return t.nodes[nid].threshold }

// SplitIndex reports the feature index tested at internal node nid.
func (t *Tree) SplitIndex(nid int) uint32 { return t.nodes[nid].sindex &^ defaultLeftBit }

// DefaultLeft reports whether missing values follow the left child at nid.
func (t *Tree) DefaultLeft(nid int) bool { return t.nodes[nid].sindex&defaultLeftBit != 0 }

// ComparisonOp reports the comparison operator of node nid.
func (t *Tree) ComparisonOp(nid int) Operator { return t.nodes[nid].cmp }

// Gain reports the recorded loss change of node nid, and whether one was set.
func (t *Tree) Gain(nid int) (float64, bool) { return t.nodes[nid].gain, t.nodes[nid].hasGain }

// SumHess reports the recorded hessian sum of node nid, and whether one was set.
func (t *Tree) SumHess(nid int) (float64, bool) { return t.nodes[nid].sumHess, t.nodes[nid].hasSumHess }

// Equal reports whether t and u are structurally identical: the same nodes
// with the same children, splits, values, and statistics.
func (t Tree) Equal(u Tree) bool {
	if len(t.nodes) != len(u.nodes) {
		return false
	}
	for i, n := range t.nodes {
		if n != u.nodes[i] {
			return false
		}
	}
	return true
}
