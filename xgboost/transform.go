// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package xgboost

import (
	"fmt"
	"math"
	"strings"

	"github.com/Jaime0/treelite"
)

// objectiveTransform maps an XGBoost objective name to the prediction
// transform an evaluator must apply to raw margin sums.
var objectiveTransform = map[string]string{
	"reg:linear":           "identity",
	"reg:squarederror":     "identity",
	"reg:squaredlogerror":  "identity",
	"reg:pseudohubererror": "identity",
	"binary:logistic":      "sigmoid",
	"binary:logitraw":      "identity",
	"binary:hinge":         "hinge",
	"count:poisson":        "exponential",
	"reg:gamma":            "exponential",
	"reg:tweedie":          "exponential",
	"multi:softmax":        "max_index",
	"multi:softprob":       "softmax",
	"survival:cox":         "exponential",
	"survival:aft":         "exponential",
}

// setPredTransform wires into m the prediction transform implied by the
// objective the model was trained with. The ranking objectives all operate
// on raw margins.
func setPredTransform(objective string, m *treelite.Model) error {
	if t, ok := objectiveTransform[objective]; ok {
		m.Param.PredTransform = t
		return nil
	}
	if strings.HasPrefix(objective, "rank:") {
		m.Param.PredTransform = "identity"
		return nil
	}
	return fmt.Errorf("xgboost: unknown objective %q", objective)
}

// transformGlobalBiasToMargin converts the stored base score from
// probability space to margin space by inverting the model's prediction
// transform. XGBoost 1.0 and later save the user-provided base score, while
// the evaluator adds the bias to raw margins.
func transformGlobalBiasToMargin(m *treelite.Model) {
	switch m.Param.PredTransform {
	case "sigmoid":
		m.Param.GlobalBias = probToMarginSigmoid(m.Param.GlobalBias)
	case "exponential":
		m.Param.GlobalBias = probToMarginExponential(m.Param.GlobalBias)
	}
}

func probToMarginSigmoid(p float32) float32 {
	return float32(-math.Log(1/float64(p) - 1))
}

func probToMarginExponential(p float32) float32 {
	return float32(math.Log(float64(p)))
}
