// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package xgboost

import (
	"math"
	"testing"

	"github.com/Jaime0/treelite"
)

func TestSetPredTransform(t *testing.T) {
	tests := []struct {
		objective string
		want      string
	}{
		{"reg:squarederror", "identity"},
		{"reg:linear", "identity"},
		{"binary:logistic", "sigmoid"},
		{"binary:logitraw", "identity"},
		{"binary:hinge", "hinge"},
		{"count:poisson", "exponential"},
		{"reg:gamma", "exponential"},
		{"reg:tweedie", "exponential"},
		{"multi:softmax", "max_index"},
		{"multi:softprob", "softmax"},
		{"survival:cox", "exponential"},
		{"rank:pairwise", "identity"},
		{"rank:ndcg", "identity"},
	}
	for _, test := range tests {
		m := treelite.NewModel()
		if err := setPredTransform(test.objective, m); err != nil {
			t.Errorf("setPredTransform(%q) failed: %v", test.objective, err)
			continue
		}
		if got := m.Param.PredTransform; got != test.want {
			t.Errorf("setPredTransform(%q): got %q, want %q", test.objective, got, test.want)
		}
	}

	m := treelite.NewModel()
	if err := setPredTransform("made:up", m); err == nil {
		t.Error("setPredTransform should fail for an unknown objective")
	}
	if err := setPredTransform("", m); err == nil {
		t.Error("setPredTransform should fail for an empty objective")
	}
}

func TestTransformGlobalBiasToMargin(t *testing.T) {
	tests := []struct {
		transform string
		bias      float32
		want      float32
	}{
		{"sigmoid", 0.5, 0},
		{"sigmoid", 0.75, float32(math.Log(3))},
		{"exponential", 1, 0},
		{"exponential", 0.25, float32(math.Log(0.25))},
		{"identity", 0.5, 0.5},
		{"softmax", 0.5, 0.5},
	}
	for _, test := range tests {
		m := treelite.NewModel()
		m.Param.PredTransform = test.transform
		m.Param.GlobalBias = test.bias
		transformGlobalBiasToMargin(m)
		if got := m.Param.GlobalBias; !closeTo(got, test.want) {
			t.Errorf("transform %q bias %v: got %v, want %v", test.transform, test.bias, got, test.want)
		}
	}
}

func closeTo(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) <= 1e-6
}
