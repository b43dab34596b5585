// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package xgboost_test

import (
	"testing"

	"github.com/Jaime0/treelite/xgboost"
)

// A multi-class model exercising the parts of the schema the loader accepts
// but does not interpret: objective parameter blocks, learner attributes
// with nested structure, per-tree categorical arrays, and the deprecated
// num_deleted tree parameter.
const multiClassDoc = `{
  "version": [1, 7, 5],
  "learner": {
    "learner_model_param": {"base_score": "0.5", "num_class": "3", "num_feature": "2"},
    "gradient_booster": {
      "name": "gbtree",
      "model": {
        "gbtree_model_param": {"num_trees": "1", "size_leaf_vector": "0"},
        "trees": [
          {
            "tree_param": {"num_nodes": "1", "num_feature": "2", "size_leaf_vector": "0", "num_deleted": "0"},
            "id": 0,
            "loss_changes": [0.0],
            "sum_hessian": [1.0],
            "base_weights": [0.0],
            "leaf_child_counts": [0],
            "left_children": [-1],
            "right_children": [-1],
            "parents": [2147483647],
            "split_indices": [0],
            "split_conditions": [0.5],
            "default_left": [false],
            "categories": [1, 2, 3],
            "split_type": [0]
          }
        ],
        "tree_info": [0]
      }
    },
    "objective": {
      "name": "multi:softprob",
      "softmax_multiclass_param": {"num_class": "3"}
    },
    "attributes": {"scikit_learn": "{\"classes_\": [0, 1, 2]}", "best_iteration": "0"}
  }
}`

func TestLoadToleratedExtras(t *testing.T) {
	m, err := xgboost.LoadBytes([]byte(multiClassDoc))
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}
	if got, want := m.NumOutputGroup, int32(3); got != want {
		t.Errorf("NumOutputGroup: got %d, want %d", got, want)
	}
	if got, want := m.Param.PredTransform, "softmax"; got != want {
		t.Errorf("PredTransform: got %q, want %q", got, want)
	}
	// softmax has no probability-to-margin mapping; the base score is kept.
	if got, want := m.Param.GlobalBias, float32(0.5); got != want {
		t.Errorf("GlobalBias: got %v, want %v", got, want)
	}
	if got, want := m.NumTree(), 1; got != want {
		t.Fatalf("NumTree: got %d, want %d", got, want)
	}
}
