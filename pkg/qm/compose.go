package qm

// Compose merges a low-level (geometry + frequency) result with a
// high-level single-point result: every thermal and vibrational field
// comes from low, only the electronic energy is taken from high. This
// is the standard composite-method approximation; thermal corrections
// are assumed insensitive to the electronic structure level. Both
// inputs are expected to have passed validation already, and the
// caller is responsible for the two files describing the same
// geometry.
func Compose(low, high EnergyComponents) EnergyComponents {
	combined := low
	combined.ElectronicEnergy = high.ElectronicEnergy
	if low.Frequencies != nil {
		combined.Frequencies = make([]float64, len(low.Frequencies))
		copy(combined.Frequencies, low.Frequencies)
	}
	return combined
}
