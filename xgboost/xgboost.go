// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package xgboost loads gradient-boosted tree models saved in the XGBoost
// JSON format into treelite ensembles.
//
// # Format
//
// An XGBoost JSON model is a single object with exactly two members:
//
//	{"version": [1, 4, 0], "learner": {...}}
//
// The learner holds the scalar model parameters, the gradient booster with
// its trees, and the training objective. Each tree is stored as a set of
// parallel arrays indexed by node id; the loader validates their lengths
// against the declared node count and renumbers the nodes breadth-first into
// the dense id space of treelite.Tree.
//
// Only "gbtree" boosters are supported. Categorical split data (the
// "categories" and "split_type" arrays) is recognized and skipped.
//
// # Parsing
//
// The input is consumed as a stream of events from a jtree.Stream; the
// document is never materialized. A stack of schema handlers mirrors the
// nesting of the document: each handler interprets the members of one object
// or array, pushes a child handler when a recognized key opens a container,
// and pops itself when its container closes. Any unrecognized structure
// aborts the parse with an error.
package xgboost

import (
	"bytes"
	"io"
	"os"

	"github.com/creachadair/jtree"

	"github.com/Jaime0/treelite"
)

// Load parses an XGBoost JSON model document from r. Malformed JSON is
// reported as a *jtree.SyntaxError; documents that are well-formed JSON but
// do not follow the XGBoost model schema are reported as ordinary errors.
func Load(r io.Reader) (*treelite.Model, error) {
	d := newDispatcher()
	if err := jtree.NewStream(r).Parse(d); err != nil {
		return nil, err
	}
	return d.result()
}

// LoadBytes parses an XGBoost JSON model document held in memory.
func LoadBytes(data []byte) (*treelite.Model, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile parses the XGBoost JSON model document stored at path. The file
// is closed before LoadFile returns, whether or not parsing succeeds.
func LoadFile(path string) (*treelite.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
