package model

// Metric names follow the source spreadsheet's row labels verbatim so that
// reports line up with the published model row-for-row.
const (
	KeyPlannedCapacityFactor = "Planned Capacity Factor"
	KeyBaseEnergy            = "Base Energy Requirement [MW]"

	KeyBatteryCapacity       = "Battery Capacity [MWh]"
	KeyRoundTripEfficiency   = "Round Trip Efficiency"
	KeyBatteryCapacityNeeded = "Battery Capacity Needed [MWh]"
	KeyIncreased             = "Increased [MWh]"
	KeyIncreasedNeed         = "Increased Need [MW]"
	KeyBatteryCapitalCost    = "Battery Capital Cost [M$]"
	KeyBatteryFixedOM        = "Battery Fixed O&M [$/tCO2eq]"
	KeyBatteryVariableOM     = "Battery Variable O&M [$/tCO2eq]"

	KeyPlantSize          = "Plant Size [MW]"
	KeyOvernightCost      = "Overnight Cost [M$]"
	KeyLeadTimeMultiplier = "Lead Time Multiplier"
	KeyCapitalCost        = "Capital Cost [M$]"
	KeyTotalCapitalCost   = "Total Capital Cost [M$]"
	KeyCapitalRecovery    = "Capital Recovery [$/tCO2eq]"
	KeyPowerFixedOM       = "Power Fixed O&M [$/tCO2eq]"
	KeyPowerVariableOM    = "Power Variable O&M [$/tCO2eq]"
	KeyTotalFixedOM       = "Total Fixed O&M [$/tCO2eq]"
	KeyTotalVariableOM    = "Total Variable O&M [$/tCO2eq]"
	KeyNaturalGasUse      = "Natural Gas Use [mmBTU/tCO2eq]"
	KeyNaturalGasCost     = "Natural Gas Cost [$/tCO2eq]"
	KeyEmitted            = "Emitted [tCO2eq/tCO2]"
	KeyTotalCostGross     = "Total Cost [$/tCO2eq gross]"
	KeyTotalCostNet       = "Total Cost [$/tCO2eq net]"

	KeyCapitalCostWithLeadTime = "Capital Cost (including Lead Time) [M$]"
	KeyFixedOM                 = "Fixed O&M [$/tCO2eq]"
	KeyVariableOM              = "Variable O&M [$/tCO2eq]"

	KeyTotalPowerCapacity   = "Total Power Capacity Required [MW]"
	KeyTotalBatteryCapacity = "Total Battery Capacity Required [MWh]"
	KeyNetCapture           = "Net Capture [tCO2/yr]"
	KeyTotalCostNetRemoved  = "Total Cost [$/tCO2 net removed]"
	KeyCompositeGasCost     = "Natural Gas Cost [$/tCO2]"
	KeyTotalCost            = "Total Cost [$/tCO2]"
)
