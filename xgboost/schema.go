// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package xgboost

import (
	"errors"
	"fmt"
	"slices"

	"github.com/creachadair/mds/mlink"
	"go4.org/mem"

	"github.com/Jaime0/treelite"
)

// errUnsupportedBooster is reported for models trained with a booster other
// than gbtree, such as gblinear or dart.
var errUnsupportedBooster = errors.New("xgboost: only GBTree-type boosters are currently supported")

// A rootHandler awaits the single top-level object of the document. Any
// other value at the top level is a parse error.
type rootHandler struct {
	base
	done bool
}

func (h *rootHandler) BeginObject() error {
	if h.done {
		return errors.New("xgboost: unexpected content after model document")
	}
	h.done = true
	h.d.push(&xgboostModelHandler{base: base{d: h.d}, out: h.d.model})
	return nil
}

func (h *rootHandler) BeginArray() error    { return h.badValue() }
func (h *rootHandler) Null() error          { return h.badValue() }
func (h *rootHandler) Bool(bool) error      { return h.badValue() }
func (h *rootHandler) Int(int64) error      { return h.badValue() }
func (h *rootHandler) Uint(uint64) error    { return h.badValue() }
func (h *rootHandler) Double(float64) error { return h.badValue() }
func (h *rootHandler) Text([]byte) error    { return h.badValue() }

func (h *rootHandler) badValue() error {
	return errors.New("xgboost: model document must be a JSON object")
}

// An xgboostModelHandler parses the top-level object, which must hold
// exactly the "version" and "learner" members.
type xgboostModelHandler struct {
	base
	out     *treelite.Model
	version []uint32
}

func (h *xgboostModelHandler) BeginArray() error {
	if h.is("version") {
		h.d.push(&numberArray[uint32]{base: base{d: h.d}, out: &h.version})
		return nil
	}
	return fmt.Errorf("xgboost: unexpected array %q at top level", h.key)
}

func (h *xgboostModelHandler) BeginObject() error {
	if h.is("learner") {
		h.d.push(&learnerHandler{base: base{d: h.d}, out: h.out})
		return nil
	}
	return fmt.Errorf("xgboost: unexpected object %q at top level", h.key)
}

func (h *xgboostModelHandler) EndObject() error {
	if h.members != 2 {
		return fmt.Errorf("xgboost: model must have exactly 2 members (version, learner), got %d", h.members)
	}
	h.out.RandomForestFlag = false
	// Before XGBoost 1.0 the saved base score is already a margin; from 1.0
	// on it is the user-provided value and must be transformed.
	if len(h.version) > 0 && h.version[0] >= 1 {
		transformGlobalBiasToMargin(h.out)
	}
	return h.pop()
}

// A learnerHandler parses the "learner" object and, once it closes, wires
// the prediction transform implied by the training objective.
type learnerHandler struct {
	base
	out       *treelite.Model
	objective string
}

func (h *learnerHandler) BeginObject() error {
	switch {
	case h.is("learner_model_param"):
		h.d.push(&learnerParamHandler{base: base{d: h.d}, out: h.out})
	case h.is("gradient_booster"):
		h.d.push(&gradientBoosterHandler{base: base{d: h.d}, out: h.out})
	case h.is("objective"):
		h.d.push(&objectiveHandler{base: base{d: h.d}, out: &h.objective})
	case h.is("attributes"):
		h.d.push(h.ignore())
	default:
		return fmt.Errorf("xgboost: unexpected object %q in learner", h.key)
	}
	return nil
}

func (h *learnerHandler) EndObject() error {
	if err := setPredTransform(h.objective, h.out); err != nil {
		return err
	}
	return h.pop()
}

// A learnerParamHandler parses "learner_model_param", whose values XGBoost
// writes as decimal strings rather than JSON numbers.
type learnerParamHandler struct {
	base
	out *treelite.Model
}

func (h *learnerParamHandler) Text(s []byte) error {
	switch {
	case h.is("base_score"):
		v, err := mem.ParseFloat(mem.B(s), 32)
		if err != nil {
			return fmt.Errorf("xgboost: invalid base_score %q: %w", s, err)
		}
		h.out.Param.GlobalBias = float32(v)
	case h.is("num_class"):
		v, err := mem.ParseInt(mem.B(s), 10, 32)
		if err != nil {
			return fmt.Errorf("xgboost: invalid num_class %q: %w", s, err)
		}
		h.out.NumOutputGroup = max(int32(v), 1)
	case h.is("num_feature"):
		v, err := mem.ParseInt(mem.B(s), 10, 32)
		if err != nil {
			return fmt.Errorf("xgboost: invalid num_feature %q: %w", s, err)
		}
		h.out.NumFeature = int32(v)
	default:
		return fmt.Errorf("xgboost: unexpected key %q in learner_model_param", h.key)
	}
	return nil
}

// An objectiveHandler copies the objective name into the enclosing learner
// and skips the per-family parameter sub-objects.
type objectiveHandler struct {
	base
	out *string
}

// objectiveParams are the documented per-family parameter sub-objects. Their
// contents do not affect the loaded model.
var objectiveParams = []string{
	"reg_loss_param",
	"poisson_regression_param",
	"tweedie_regression_param",
	"softmax_multiclass_param",
	"lambda_rank_param",
	"aft_loss_param",
}

func (h *objectiveHandler) Text(s []byte) error {
	if h.is("name") {
		*h.out = string(s)
		return nil
	}
	return fmt.Errorf("xgboost: unexpected key %q in objective", h.key)
}

func (h *objectiveHandler) BeginObject() error {
	if slices.Contains(objectiveParams, h.key) {
		h.d.push(h.ignore())
		return nil
	}
	return fmt.Errorf("xgboost: unexpected object %q in objective", h.key)
}

// A gradientBoosterHandler parses the "gradient_booster" object, verifying
// that the booster is gbtree before descending into its model.
type gradientBoosterHandler struct {
	base
	out *treelite.Model
}

func (h *gradientBoosterHandler) Text(s []byte) error {
	if !h.is("name") {
		return fmt.Errorf("xgboost: unexpected key %q in gradient_booster", h.key)
	}
	if string(s) != "gbtree" {
		return errUnsupportedBooster
	}
	return nil
}

func (h *gradientBoosterHandler) BeginObject() error {
	if h.is("model") {
		h.d.push(&gbTreeModelHandler{base: base{d: h.d}, out: h.out})
		return nil
	}
	return fmt.Errorf("xgboost: key %q not recognized; is this a GBTree-type booster?", h.key)
}

// A gbTreeModelHandler parses the gbtree "model" object, collecting the tree
// array and skipping the per-tree group assignments and the model parameter
// block.
type gbTreeModelHandler struct {
	base
	out *treelite.Model
}

func (h *gbTreeModelHandler) BeginArray() error {
	switch {
	case h.is("trees"):
		h.d.push(&objectArray[treelite.Tree]{
			base: base{d: h.d},
			out:  &h.out.Trees,
			elem: func(d *dispatcher, out *treelite.Tree) handler {
				return &regTreeHandler{base: base{d: d}, out: out}
			},
		})
	case h.is("tree_info"):
		h.d.push(h.ignore())
	default:
		return fmt.Errorf("xgboost: unexpected array %q in gbtree model", h.key)
	}
	return nil
}

func (h *gbTreeModelHandler) BeginObject() error {
	if h.is("gbtree_model_param") {
		h.d.push(h.ignore())
		return nil
	}
	return fmt.Errorf("xgboost: unexpected object %q in gbtree model", h.key)
}

// A treeParamHandler parses the "tree_param" sub-object of a tree. XGBoost
// writes its values as decimal strings.
type treeParamHandler struct {
	base
	out *int32 // receives num_nodes
}

func (h *treeParamHandler) Text(s []byte) error {
	switch {
	case h.is("num_nodes"):
		v, err := mem.ParseInt(mem.B(s), 10, 32)
		if err != nil {
			return fmt.Errorf("xgboost: invalid num_nodes %q: %w", s, err)
		}
		*h.out = int32(v)
		return nil
	case h.is("num_feature"), h.is("size_leaf_vector"), h.is("num_deleted"):
		// num_deleted is deprecated but still written by some versions.
		return nil
	}
	return fmt.Errorf("xgboost: unexpected key %q in tree_param", h.key)
}

// A regTreeHandler accumulates one tree's flat node arrays and, when the
// tree object closes, reshapes them into the destination tree.
type regTreeHandler struct {
	base
	out *treelite.Tree

	numNodes        int32
	lossChanges     []float64
	sumHessian      []float64
	baseWeights     []float64
	leafChildCounts []int32
	leftChildren    []int32
	rightChildren   []int32
	parents         []int32
	splitIndices    []int32
	splitConditions []float64
	defaultLeft     []bool
}

func (h *regTreeHandler) BeginArray() error {
	// categories and split_type are reserved for categorical splits and are
	// skipped until those are supported.
	switch {
	case h.is("loss_changes"):
		h.d.push(&numberArray[float64]{base: base{d: h.d}, out: &h.lossChanges})
	case h.is("sum_hessian"):
		h.d.push(&numberArray[float64]{base: base{d: h.d}, out: &h.sumHessian})
	case h.is("base_weights"):
		h.d.push(&numberArray[float64]{base: base{d: h.d}, out: &h.baseWeights})
	case h.is("leaf_child_counts"):
		h.d.push(&numberArray[int32]{base: base{d: h.d}, out: &h.leafChildCounts})
	case h.is("left_children"):
		h.d.push(&numberArray[int32]{base: base{d: h.d}, out: &h.leftChildren})
	case h.is("right_children"):
		h.d.push(&numberArray[int32]{base: base{d: h.d}, out: &h.rightChildren})
	case h.is("parents"):
		h.d.push(&numberArray[int32]{base: base{d: h.d}, out: &h.parents})
	case h.is("split_indices"):
		h.d.push(&numberArray[int32]{base: base{d: h.d}, out: &h.splitIndices})
	case h.is("split_conditions"):
		h.d.push(&numberArray[float64]{base: base{d: h.d}, out: &h.splitConditions})
	case h.is("default_left"):
		h.d.push(&boolArray{base: base{d: h.d}, out: &h.defaultLeft})
	case h.is("categories"), h.is("split_type"):
		h.d.push(h.ignore())
	default:
		return fmt.Errorf("xgboost: unexpected array %q in tree", h.key)
	}
	return nil
}

func (h *regTreeHandler) BeginObject() error {
	if h.is("tree_param") {
		h.d.push(&treeParamHandler{base: base{d: h.d}, out: &h.numNodes})
		return nil
	}
	return fmt.Errorf("xgboost: unexpected object %q in tree", h.key)
}

func (h *regTreeHandler) Uint(uint64) error {
	if h.is("id") {
		return nil // the stored tree id is not used
	}
	return fmt.Errorf("xgboost: unexpected integer under key %q in tree", h.key)
}

func (h *regTreeHandler) EndObject() error {
	if err := h.reshape(); err != nil {
		return err
	}
	return h.pop()
}

// reshape rewrites the flat node arrays into the destination tree,
// renumbering the nodes breadth-first so the destination ids are dense from
// 0. Nodes unreachable from the stored root, such as subtrees removed by
// pruning, are dropped.
func (h *regTreeHandler) reshape() error {
	n := int(h.numNodes)
	if len(h.lossChanges) != n || len(h.sumHessian) != n ||
		len(h.baseWeights) != n || len(h.leafChildCounts) != n ||
		len(h.leftChildren) != n || len(h.rightChildren) != n ||
		len(h.parents) != n || len(h.splitIndices) != n ||
		len(h.splitConditions) != n || len(h.defaultLeft) != n {
		return fmt.Errorf("xgboost: tree node arrays do not all have num_nodes=%d entries", n)
	}
	if n == 0 {
		return errors.New("xgboost: tree has no nodes")
	}

	h.out.Init()

	// Queue of (stored id, destination id) pairs, seeded with the root.
	var q mlink.Queue[[2]int32]
	q.Add([2]int32{0, 0})
	for !q.IsEmpty() {
		ids, _ := q.Pop()
		old, nid := int(ids[0]), int(ids[1])
		if old < 0 || old >= n {
			return fmt.Errorf("xgboost: tree node id %d out of range [0, %d)", old, n)
		}
		if h.leftChildren[old] == -1 {
			h.out.SetLeaf(nid, float32(h.splitConditions[old]))
		} else {
			feature := h.splitIndices[old]
			if feature < 0 {
				return fmt.Errorf("xgboost: negative split index %d at tree node %d", feature, old)
			}
			h.out.AddChildren(nid)
			h.out.SetNumericalSplit(nid, uint32(feature), float32(h.splitConditions[old]),
				h.defaultLeft[old], treelite.OpLT)
			h.out.SetGain(nid, h.lossChanges[old])
			q.Add([2]int32{h.leftChildren[old], int32(h.out.LeftChild(nid))})
			q.Add([2]int32{h.rightChildren[old], int32(h.out.RightChild(nid))})
		}
		h.out.SetSumHess(nid, h.sumHessian[old])
	}
	return nil
}
