package params

// Source identifies one energy supply technology in the parameter table's
// Technology section. The set is closed: blocks validate their source at
// construction instead of doing open-ended name lookups.
type Source string

const (
	NGCCWithCCS     Source = "NGCC w/ CCS"
	AdvancedNGCC    Source = "Advanced NGCC"
	Solar           Source = "Solar"
	Wind            Source = "Wind"
	AdvancedNuclear Source = "Advanced Nuclear"

	// BatteryStorage is not a valid energy-block source; it keys the storage
	// technology entry read by battery sizing.
	BatteryStorage Source = "Battery Storage"
)

// EnergySources lists the technologies an energy block may be bound to.
var EnergySources = []Source{NGCCWithCCS, AdvancedNGCC, Solar, Wind, AdvancedNuclear}

// GasSources lists the technologies usable for the direct-fired thermal path.
var GasSources = []Source{NGCCWithCCS, AdvancedNGCC}

// Valid reports whether s names an energy supply technology.
func (s Source) Valid() bool {
	for _, v := range EnergySources {
		if s == v {
			return true
		}
	}
	return false
}

// GasFired reports whether s can supply thermal energy by direct combustion.
func (s Source) GasFired() bool {
	for _, v := range GasSources {
		if s == v {
			return true
		}
	}
	return false
}
