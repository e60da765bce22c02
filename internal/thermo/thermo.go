// Package thermo holds physical constants, unit conversions and the
// small thermodynamic formulas shared by all backends.
package thermo

import (
	"math"

	"comchemkit/pkg/qm"
)

// Physical constants
const (
	// https://physics.nist.gov/cuu/Constants
	Boltzmann      = 3.166811563e-6 // Hartree/K
	GasConstant    = 8.314462618    // J/(mol·K)
	Avogadro       = 6.02214076e23
	HartreeToEV    = 27.211386245
	HartreeToKcal  = 627.509474
	HartreeToKJ    = 2625.5002
	BohrToAngstrom = 0.529177249
	// standard pressure in Pa
	Po = 101325.0
)

// Defaults
const (
	DefaultTemperature   = 298.15 // K
	DefaultPressure      = 1.0    // atm
	DefaultConcentration = 1.0    // mol/L
	// frequencies below this are treated as noise, not imaginary modes
	MinFreqThreshold = -50.0 // cm⁻¹
)

// PhaseCorrection returns the standard-state Gibbs correction, in
// Hartree, for moving an ideal gas at 1 atm to a solution at conc
// mol/L: RT·ln(Vm·c), with Vm the molar gas volume in L/mol. At
// 298.15 K and 1 M this is the familiar 1.89 kcal/mol.
func PhaseCorrection(tempK, conc float64) float64 {
	if tempK <= 0 || conc <= 0 {
		return 0
	}
	vm := GasConstant * tempK / Po * 1000 // L/mol at 1 atm
	corr := GasConstant * tempK * math.Log(vm*conc)
	return corr / 1000 / HartreeToKJ
}

// GibbsFreeEnergy sums the electronic energy, the Gibbs correction and
// the solution-phase standard-state correction, in Hartree.
func GibbsFreeEnergy(e qm.EnergyComponents, tempK, conc float64) float64 {
	return e.ElectronicEnergy + e.GibbsCorrection + PhaseCorrection(tempK, conc)
}
