package securing

import (
	"math"
	"sort"
)

// Standard strap ratings: WLL in lbs for North America, LC in kg elsewhere.
var (
	standardWLLLbs = []float64{300, 500, 833, 1000, 1100, 1466, 1666, 2000, 3333, 5400}
	standardLCKg   = []float64{250, 400, 500, 750, 1000, 1500, 2000, 2500, 4000, 5000}
)

const (
	extraStrapCounts    = 6
	maxRecommendations  = 3
	exactMatchTolerance = 0.01
	// No single strap may carry more than this share of the requirement.
	maxShareDivisor = 3.0
)

type Recommendation struct {
	StrapCount           int        `json:"strap_count"`
	StrapWLL             float64    `json:"strap_wll"`
	StrapUnit            WeightUnit `json:"strap_unit"`
	TotalCapacity        float64    `json:"total_capacity"`
	SafetyMargin         float64    `json:"safety_margin"`
	IsExactMatch         bool       `json:"is_exact_match"`
	IsRecommended        bool       `json:"is_recommended"`
	RecommendationReason string     `json:"recommendation_reason"`
}

func strapCatalog(r Region) ([]float64, WeightUnit) {
	if RegionFactorsFor(r).WeightUnit == UnitLbs {
		return standardWLLLbs, UnitLbs
	}
	return standardLCKg, UnitKg
}

// GenerateRecommendations lists at most three standard strap configurations that
// clear the regional safety margin for requiredWLL, fewest straps first. An empty
// slice means no safe configuration exists within the search window.
func GenerateRecommendations(requiredWLL float64, unit WeightUnit, minCount int, r Region) []Recommendation {
	f := RegionFactorsFor(r)
	catalog, strapUnit := strapCatalog(r)
	required := ConvertWeight(requiredWLL, unit, strapUnit)

	candidates := []Recommendation{}
	for count := minCount; count <= minCount+extraStrapCounts; count++ {
		if count <= 0 {
			continue
		}
		perStrap := math.Max(required/float64(count), required/maxShareDivisor)
		for _, rating := range catalog {
			if rating < perStrap {
				continue
			}
			total := rating * float64(count)
			margin := (total - required) / required * 100
			rec := Recommendation{
				StrapCount:    count,
				StrapWLL:      rating,
				StrapUnit:     strapUnit,
				TotalCapacity: total,
				SafetyMargin:  margin,
				IsExactMatch:  math.Abs(total-required) <= required*exactMatchTolerance,
				IsRecommended: margin >= f.SafetyMargin,
			}
			rec.RecommendationReason = recommendationReason(rec, f.SafetyMargin)
			if !rec.IsRecommended {
				continue
			}
			candidates = append(candidates, rec)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SafetyMargin < candidates[j].SafetyMargin
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].StrapCount != candidates[j].StrapCount {
			return candidates[i].StrapCount < candidates[j].StrapCount
		}
		return candidates[i].TotalCapacity < candidates[j].TotalCapacity
	})
	return candidates
}

func recommendationReason(rec Recommendation, regionMargin float64) string {
	switch {
	case rec.IsExactMatch:
		return "Exact match for the required capacity"
	case rec.SafetyMargin >= 50:
		return "High safety margin (50% or more)"
	case rec.SafetyMargin >= 30:
		return "Good safety margin (30% or more)"
	case rec.SafetyMargin >= regionMargin:
		return "Meets the regional minimum safety margin"
	default:
		return "Insufficient safety margin"
	}
}
