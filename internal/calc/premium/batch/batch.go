package batch

import (
	"fmt"

	"Strapcalc/internal/calc/securing"
)

const maxItems = 200

type SecuringBatchInput struct {
	Items []securing.Input `json:"items"`
}

type SecuringBatchResult struct {
	Results []securing.Result `json:"results"`
	Unsafe  []int             `json:"unsafe"` // indexes without a safe configuration
}

func CalculateSecuring(in SecuringBatchInput) (SecuringBatchResult, error) {
	if len(in.Items) == 0 {
		return SecuringBatchResult{}, fmt.Errorf("no items")
	}
	if len(in.Items) > maxItems {
		return SecuringBatchResult{}, fmt.Errorf("too many items: %d (max %d)", len(in.Items), maxItems)
	}
	out := SecuringBatchResult{
		Results: make([]securing.Result, 0, len(in.Items)),
		Unsafe:  []int{},
	}
	for i, item := range in.Items {
		res, err := securing.Calculate(item)
		if err != nil {
			return SecuringBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		if res.NoSafeConfiguration {
			out.Unsafe = append(out.Unsafe, i)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
