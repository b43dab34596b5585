// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package treelite_test

import (
	"testing"

	"github.com/Jaime0/treelite"
)

func TestNewModelDefaults(t *testing.T) {
	m := treelite.NewModel()

	if got, want := m.NumOutputGroup, int32(1); got != want {
		t.Errorf("NumOutputGroup: got %d, want %d", got, want)
	}
	if got, want := m.Param.PredTransform, "identity"; got != want {
		t.Errorf("PredTransform: got %q, want %q", got, want)
	}
	if got, want := m.Param.SigmoidAlpha, float32(1); got != want {
		t.Errorf("SigmoidAlpha: got %v, want %v", got, want)
	}
	if got, want := m.Param.GlobalBias, float32(0); got != want {
		t.Errorf("GlobalBias: got %v, want %v", got, want)
	}
	if m.RandomForestFlag {
		t.Error("RandomForestFlag should default to false")
	}
	if got, want := m.NumTree(), 0; got != want {
		t.Errorf("NumTree: got %d, want %d", got, want)
	}
}
