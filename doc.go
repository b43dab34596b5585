// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package treelite implements an in-memory representation of gradient-boosted
// decision-tree ensembles.
//
// # Trees
//
// The Tree type stores a binary decision tree with nodes addressed by dense
// integer ids starting at 0, the root. A tree is grown by allocating children
// in pairs with AddChildren, then marking each node as either a numerical
// split (SetNumericalSplit) or a leaf (SetLeaf). Optional per-node training
// statistics are recorded with SetGain and SetSumHess.
//
//	var t treelite.Tree
//	t.Init()
//	t.AddChildren(0)
//	t.SetNumericalSplit(0, 2, 1.5, true, treelite.OpLT)
//	t.SetLeaf(t.LeftChild(0), 0.1)
//	t.SetLeaf(t.RightChild(0), 0.2)
//
// # Models
//
// A Model bundles an ensemble of trees with the scalar parameters an
// evaluator needs: the global bias added to every raw prediction, the number
// of output groups and input features, and the name of the prediction
// transform mapping raw margins to final outputs.
//
// Models are usually not built by hand but produced by a frontend such as the
// xgboost subpackage, which loads models saved by other tree libraries.
package treelite
