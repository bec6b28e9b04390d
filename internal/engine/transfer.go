package engine

import (
	"math"

	"github.com/oxyfarm/aercomp/internal/finance"
)

// Oxygen-transfer constants.
const (
	// Theta is the Arrhenius temperature-correction base for oxygen transfer.
	Theta = 1.024

	// HPToKWFactor converts horsepower to kilowatts.
	HPToKWFactor = 0.745699872

	// fieldDerating converts rated SOTR to field transfer: real ponds run at
	// roughly half of standard clean-water conditions.
	fieldDerating = 0.5

	// ratedTemperature is the reference temperature of SOTR ratings, in °C.
	ratedTemperature = 20.0

	// Temperature clamp bounds. Values outside are treated as data entry
	// noise, not physics.
	minTemperature = -20.0
	maxTemperature = 100.0
)

// AdjustedTransferRate derates the rated SOTR to the oxygen transfer rate at
// the farm's water temperature (OTR_T), in kg O2/hour. The temperature is
// clamped to [-20, 100] °C and the result is rounded to 2 decimals.
func AdjustedTransferRate(sotr, temperatureC float64) float64 {
	t := math.Max(minTemperature, math.Min(maxTemperature, temperatureC))
	otr := sotr * fieldDerating * math.Pow(Theta, t-ratedTemperature)
	return finance.Round2(otr)
}

// HPToKW converts horsepower to kilowatts.
func HPToKW(hp float64) float64 {
	return hp * HPToKWFactor
}
