package gaussian

import "comchemkit/pkg/qm"

// HighLevel extracts a low-level frequency run and a high-level
// single-point run, each under its own validation, and composes them:
// thermal data from the low level, electronic energy from the high
// level. The merge itself adds no further validation.
func (p *Program) HighLevel(lowPath, highPath string) (qm.EnergyComponents, error) {
	low, err := p.ExtractEnergies(lowPath)
	if err != nil {
		return qm.EnergyComponents{}, err
	}
	high, err := p.ExtractEnergies(highPath)
	if err != nil {
		return qm.EnergyComponents{}, err
	}
	return qm.Compose(low, high), nil
}
