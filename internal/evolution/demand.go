package evolution

import (
	"time"

	"grid-scenario/internal/model"
)

const (
	eveningStartHour = 17
	eveningEndHour   = 21

	eveningElectricityFactor = 1.2
	eveningGasFactor         = 1.1
	winterGasFactor          = 1.3
)

// IsEveningPeak reports whether ts falls between 17:00 and 21:59.
func IsEveningPeak(ts time.Time) bool {
	h := ts.Hour()
	return h >= eveningStartHour && h <= eveningEndHour
}

// IsWinter reports whether ts falls in December, January or February.
func IsWinter(ts time.Time) bool {
	switch ts.Month() {
	case time.December, time.January, time.February:
		return true
	default:
		return false
	}
}

// SimulateDemandFluctuations scales each group's demand for the time of day
// and season of ts. Evening peak multiplies electricity by 1.2 and gas by 1.1;
// winter multiplies gas by a further 1.3.
//
// Groups are updated in place through the slice. Every group is checked
// before the first one is modified.
func SimulateDemandFluctuations(groups []model.GSPGroup, ts time.Time) error {
	for _, g := range groups {
		if err := g.RequireDemand(); err != nil {
			return err
		}
	}

	elec, gas := 1.0, 1.0
	if IsEveningPeak(ts) {
		elec *= eveningElectricityFactor
		gas *= eveningGasFactor
	}
	if IsWinter(ts) {
		gas *= winterGasFactor
	}
	if elec == 1 && gas == 1 {
		return nil
	}

	for i := range groups {
		g := &groups[i]
		g.ElectricityDemand = model.Float(*g.ElectricityDemand * elec)
		g.GasDemand = model.Float(*g.GasDemand * gas)
	}
	return nil
}
