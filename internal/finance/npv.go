package finance

import "math"

// rateEpsilon is the band within which inflation and discount rates are
// treated as equal, making the real rate indistinguishable from zero.
const rateEpsilon = 1e-6

// NPV discounts the cash flows at the real rate implied by the nominal
// discount rate and inflation. Cash flow i is discounted over i periods
// (1-indexed). When the two rates coincide within 1e-6 the real rate is ~0
// and the NPV is the plain, unrounded sum of the flows.
func NPV(cashFlows []float64, discountRate, inflationRate float64) float64 {
	if math.Abs(inflationRate-discountRate) < rateEpsilon {
		sum := 0.0
		for _, cf := range cashFlows {
			sum += cf
		}
		return sum
	}

	realRate := (1+discountRate)/(1+inflationRate) - 1
	npv := 0.0
	for i, cf := range cashFlows {
		npv += cf / math.Pow(1+realRate, float64(i+1))
	}
	return Round2(npv)
}
