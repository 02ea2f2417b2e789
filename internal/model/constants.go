// Package model implements the cost-composition engine for a Direct Air
// Capture facility: energy-supply blocks, optional battery storage, the DAC
// fixed-cost block, and the composite total that blends them into a single
// levelized cost of capture [$/tCO2].
//
// Every formula is written against the numeric.Number interface, so the whole
// engine runs unchanged on plain floats or uncertainty-propagating values.
package model

const (
	// HoursPerDay sizes battery storage against the non-generating fraction
	// of a day.
	HoursPerDay = 24.0

	// DaysPerYear converts daily battery throughput into annual cost.
	DaysPerYear = 365.0

	// HoursPerYear scales the DAC capacity factor into operational hours.
	HoursPerYear = 8760.0

	// Million converts [M$] capital figures into [$] before normalizing
	// per ton of CO2.
	Million = 1e6

	// KWPerMW converts plant size [MW] to [kW] for heat-rate fuel math.
	KWPerMW = 1000.0

	// LbToMetricTon converts emission factors quoted in lb to metric tons.
	LbToMetricTon = 0.000453592

	// GJToMMBTU converts thermal demand [GJ] to natural gas [mmBTU].
	GJToMMBTU = 0.94709
)
