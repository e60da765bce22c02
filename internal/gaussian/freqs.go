package gaussian

import (
	"strconv"
	"strings"
)

// Mode is one vibrational mode with its infrared intensity.
type Mode struct {
	Frequency float64 // cm⁻¹
	Intensity float64 // km/mol
}

// Frequencies reconstructs (frequency, IR intensity) pairs from the
// harmonic analysis blocks. Each block row carries up to three modes;
// columns are matched positionally between the frequency row and the
// intensity row of the same block, and a block with fewer populated
// columns contributes fewer pairs. Pairs come back in file order.
func (p *Program) Frequencies(path string) ([]Mode, error) {
	content, err := readOutput(path)
	if err != nil {
		return nil, err
	}
	var modes []Mode
	for _, m := range freqBlock.FindAllStringSubmatch(content, -1) {
		for i := 1; i <= 3; i++ {
			// groups 1-3 are frequencies, 10-12 the matching intensities
			if m[i] == "" || m[i+9] == "" {
				continue
			}
			freq, err := strconv.ParseFloat(m[i], 64)
			if err != nil {
				continue
			}
			inten, err := strconv.ParseFloat(m[i+9], 64)
			if err != nil {
				continue
			}
			modes = append(modes, Mode{Frequency: freq, Intensity: inten})
		}
	}
	return modes, nil
}

// dispersionLabels is ordered most specific first so the combined
// D3BJ label is found before its D3 prefix.
var dispersionLabels = []struct {
	needle, label string
}{
	{"GD3BJ", "D3BJ"},
	{"D3BJ", "D3BJ"},
	{"GD3", "D3"},
	{"D3", "D3"},
	{"GD2", "D2"},
	{"D2", "D2"},
}

// DispersionType reports which empirical dispersion correction the
// run used, or false when none is mentioned.
func (p *Program) DispersionType(path string) (string, bool) {
	content, err := readOutput(path)
	if err != nil {
		return "", false
	}
	for _, d := range dispersionLabels {
		if strings.Contains(content, d.needle) {
			return d.label, true
		}
	}
	return "", false
}
