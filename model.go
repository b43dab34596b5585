// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package treelite

// ModelParam carries the scalar parameters shared by every tree of a model.
type ModelParam struct {
	// PredTransform names the transform an evaluator applies to raw margin
	// sums, for example "identity", "sigmoid", or "softmax".
	PredTransform string

	// SigmoidAlpha scales the argument of the "sigmoid" transform.
	SigmoidAlpha float32

	// GlobalBias is added to every raw prediction before the transform.
	GlobalBias float32
}

// A Model is an ensemble of decision trees together with the metadata needed
// to evaluate them.
type Model struct {
	Trees []Tree

	// NumFeature is the number of input features the model was trained on.
	NumFeature int32

	// NumOutputGroup is the number of output groups; it exceeds 1 only for
	// multi-class classifiers. It is always at least 1.
	NumOutputGroup int32

	// RandomForestFlag is true when tree outputs are averaged rather than
	// summed.
	RandomForestFlag bool

	Param ModelParam
}

// NewModel returns an empty model with default parameters: identity
// prediction transform, sigmoid alpha 1, global bias 0, and one output group.
func NewModel() *Model {
	return &Model{
		NumOutputGroup: 1,
		Param: ModelParam{
			PredTransform: "identity",
			SigmoidAlpha:  1,
		},
	}
}

// NumTree reports the number of trees in the ensemble.
func (m *Model) NumTree() int { return len(m.Trees) }
