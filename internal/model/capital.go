package model

import "github.com/rshade/daccost/internal/numeric"

// LeadTimeMultiplier front-loads capital cost for a project built over the
// given number of years at the given discount rate. It implements the
// spreadsheet's discrete accrual recurrence: with r the rate and n the lead
// time in whole years,
//
//	a[0] = (1+r)/n
//	a[t] = r*sum(a[0..t-1]) + (1+r)/n    for t in 1..n-1
//
// and the multiplier is sum(a[0..n-1]). For n = 1 this reduces to 1+r.
//
// The lead time is coerced to an integer year count. A non-positive lead time
// is undefined (division by zero), mirroring the spreadsheet: callers supply
// positive lead times.
func LeadTimeMultiplier[T numeric.Number[T]](rate, years T) T {
	if years.IsNaN() {
		return numeric.NaN[T]()
	}
	n := int(years.Float())

	// (1+r)/n, the share of overnight cost spent each construction year.
	perYear := rate.Lift(1).Add(rate).Div(rate.Lift(float64(n)))

	sum := perYear
	for t := 1; t < n; t++ {
		sum = sum.Add(rate.Mul(sum).Add(perYear))
	}
	return sum
}

// RecoveryFactor is the standard annuity payment factor: the fixed annual
// payment that fully amortizes a $1 loan over the economic lifetime at the
// given rate,
//
//	r*(1+r)^n / ((1+r)^n - 1)
//
// degenerating to 1/n at a 0% rate.
func RecoveryFactor[T numeric.Number[T]](rate, lifetime T) T {
	if rate.Float() == 0 {
		return rate.Lift(1).Div(lifetime)
	}
	compound := rate.Lift(1).Add(rate).Pow(lifetime)
	return rate.Mul(compound).Div(compound.Sub(rate.Lift(1)))
}
