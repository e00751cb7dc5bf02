package batch

import (
	"fmt"

	plan "Dripline/internal/calc/plan"
)

type PlanBatchInput struct {
	Items []plan.Input `json:"items"`
}

type PlanBatchResult struct {
	Results []plan.Result `json:"results"`
}

// CalculatePlans computes a plan per patient. Any invalid patient fails the
// whole batch so a ward list is never partially planned.
func CalculatePlans(calc plan.Calculator, in PlanBatchInput) (PlanBatchResult, error) {
	if len(in.Items) == 0 {
		return PlanBatchResult{}, fmt.Errorf("no items")
	}
	out := PlanBatchResult{Results: make([]plan.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := calc.Calculate(item)
		if err != nil {
			return PlanBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
