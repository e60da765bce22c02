package gaussian

import (
	"strconv"

	"gonum.org/v1/gonum/floats"

	"comchemkit/internal/thermo"
	"comchemkit/pkg/qm"
)

// ExtractEnergies pulls all energy components out of one log file.
// A file that cannot be read at all is a hard error; missing sections
// fall back to zero so one absent block never aborts the rest. The
// assembled result must still pass the plausibility bounds.
func (p *Program) ExtractEnergies(path string) (qm.EnergyComponents, error) {
	content, err := readOutput(path)
	if err != nil {
		return qm.EnergyComponents{}, err
	}

	var e qm.EnergyComponents
	e.ElectronicEnergy = qm.FindFloat(content, scfEnergy, 0)
	e.ZeroPointEnergy = qm.FindFloat(content, zeroPoint, 0)
	e.ThermalCorrection = qm.FindFloat(content, thermalEnergy, 0)
	e.EnthalpyCorrection = qm.FindFloat(content, thermalEnthalpy, 0)
	e.GibbsCorrection = qm.FindFloat(content, thermalGibbs, 0)
	e.Entropy = qm.FindFloat(content, entropyRow, 0)
	e.NuclearRepulsion = qm.FindFloat(content, nuclearRepulsion, 0)

	for _, m := range frequencies.FindAllStringSubmatch(content, -1) {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			f, err := strconv.ParseFloat(g, 64)
			if err != nil {
				continue
			}
			e.Frequencies = append(e.Frequencies, f)
		}
	}
	if len(e.Frequencies) > 0 && floats.Min(e.Frequencies) < 0 {
		e.HasImaginaryFreq = true
	}

	if v, ok := qm.LookupFloat(content, dispersionEnergy); ok {
		e.DispersionCorrection = &v
	}
	if v, ok := qm.LookupFloat(content, smdCDSEnergy); ok {
		v /= thermo.HartreeToKcal
		e.SolvationEnergy = &v
	}
	if v, ok := qm.LookupFloat(content, counterpoise); ok {
		e.CounterpoiseCorrection = &v
	}

	if err := p.bounds.Validate(e); err != nil {
		return qm.EnergyComponents{}, err
	}
	return e, nil
}
