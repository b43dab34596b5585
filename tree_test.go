// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package treelite_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"

	"github.com/Jaime0/treelite"
)

func TestTreeGrow(t *testing.T) {
	var tree treelite.Tree
	tree.Init()

	if got, want := tree.NumNodes(), 1; got != want {
		t.Fatalf("NumNodes: got %d, want %d", got, want)
	}
	if !tree.IsLeaf(0) {
		t.Error("A fresh tree root should be a leaf")
	}

	tree.AddChildren(0)
	tree.SetNumericalSplit(0, 2, 1.5, true, treelite.OpLT)
	tree.SetGain(0, 0.9)
	tree.SetLeaf(tree.LeftChild(0), 0.1)
	tree.SetLeaf(tree.RightChild(0), 0.2)

	if got, want := tree.NumNodes(), 3; got != want {
		t.Fatalf("NumNodes: got %d, want %d", got, want)
	}
	if got, want := tree.LeftChild(0), 1; got != want {
		t.Errorf("LeftChild(0): got %d, want %d", got, want)
	}
	if got, want := tree.RightChild(0), 2; got != want {
		t.Errorf("RightChild(0): got %d, want %d", got, want)
	}
	if tree.IsLeaf(0) {
		t.Error("Node 0 should not be a leaf after AddChildren")
	}
	if got, want := tree.SplitIndex(0), uint32(2); got != want {
		t.Errorf("SplitIndex(0): got %d, want %d", got, want)
	}
	if got, want := tree.Threshold(0), float32(1.5); got != want {
		t.Errorf("Threshold(0): got %v, want %v", got, want)
	}
	if !tree.DefaultLeft(0) {
		t.Error("DefaultLeft(0) should be true")
	}
	if got, want := tree.ComparisonOp(0), treelite.OpLT; got != want {
		t.Errorf("ComparisonOp(0): got %v, want %v", got, want)
	}
	if gain, ok := tree.Gain(0); !ok || gain != 0.9 {
		t.Errorf("Gain(0): got %v, %v; want 0.9, true", gain, ok)
	}
	if _, ok := tree.SumHess(0); ok {
		t.Error("SumHess(0) should not be set")
	}
	for nid, want := range map[int]float32{1: 0.1, 2: 0.2} {
		if !tree.IsLeaf(nid) {
			t.Errorf("Node %d should be a leaf", nid)
		}
		if got := tree.LeafValue(nid); got != want {
			t.Errorf("LeafValue(%d): got %v, want %v", nid, got, want)
		}
	}
}

func TestTreeReinit(t *testing.T) {
	var tree treelite.Tree
	tree.Init()
	tree.AddChildren(0)
	tree.SetLeaf(1, 1)
	tree.SetLeaf(2, 2)

	tree.Init()
	if got, want := tree.NumNodes(), 1; got != want {
		t.Errorf("NumNodes after reinit: got %d, want %d", got, want)
	}
	if !tree.IsLeaf(0) || tree.LeafValue(0) != 0 {
		t.Error("Reinitialized tree should be a single zero leaf")
	}
}

func TestTreeEqual(t *testing.T) {
	grow := func(defaultLeft bool) treelite.Tree {
		var tree treelite.Tree
		tree.Init()
		tree.AddChildren(0)
		tree.SetNumericalSplit(0, 7, 0.25, defaultLeft, treelite.OpLT)
		tree.SetLeaf(1, -1)
		tree.SetLeaf(2, 1)
		return tree
	}

	if a, b := grow(true), grow(true); !a.Equal(b) {
		t.Error("Identically grown trees should be equal")
	}
	if a, b := grow(true), grow(false); a.Equal(b) {
		t.Error("Trees differing in default direction should not be equal")
	}
	var empty treelite.Tree
	if a := grow(true); a.Equal(empty) {
		t.Error("A grown tree should not equal an empty tree")
	}
}

func TestTreeBounds(t *testing.T) {
	var tree treelite.Tree
	tree.Init()
	mtest.MustPanic(t, func() { tree.SetLeaf(5, 1) })
	mtest.MustPanic(t, func() { tree.LeafValue(-1) })
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   treelite.Operator
		want string
	}{
		{treelite.OpNone, "none"},
		{treelite.OpEQ, "=="},
		{treelite.OpLT, "<"},
		{treelite.OpLE, "<="},
		{treelite.OpGT, ">"},
		{treelite.OpGE, ">="},
		{treelite.Operator(99), "invalid"},
	}
	for _, test := range tests {
		if got := test.op.String(); got != test.want {
			t.Errorf("String(%d): got %q, want %q", byte(test.op), got, test.want)
		}
	}
}
