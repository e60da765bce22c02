package gaussian

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"comchemkit/internal/thermo"
	"comchemkit/pkg/qm"
)

func TestExtractEnergies(t *testing.T) {
	p := New()
	got, err := p.ExtractEnergies("testdata/h2o_freq.log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ElectronicEnergy != -76.4259812430 {
		t.Errorf("electronic: got %v, wanted %v", got.ElectronicEnergy, -76.4259812430)
	}
	if got.ZeroPointEnergy != 0.021236 {
		t.Errorf("zpe: got %v, wanted %v", got.ZeroPointEnergy, 0.021236)
	}
	if got.ThermalCorrection != 0.024071 {
		t.Errorf("thermal: got %v, wanted %v", got.ThermalCorrection, 0.024071)
	}
	if got.EnthalpyCorrection != 0.025015 {
		t.Errorf("enthalpy: got %v, wanted %v", got.EnthalpyCorrection, 0.025015)
	}
	if got.GibbsCorrection != 0.003580 {
		t.Errorf("gibbs: got %v, wanted %v", got.GibbsCorrection, 0.003580)
	}
	if got.Entropy != 45.132 {
		t.Errorf("entropy: got %v, wanted %v", got.Entropy, 45.132)
	}
	if got.NuclearRepulsion != 9.1571750301 {
		t.Errorf("nuclear repulsion: got %v, wanted %v",
			got.NuclearRepulsion, 9.1571750301)
	}
	wantFreqs := []float64{1602.1862, 3815.4477, 3920.9749}
	if !reflect.DeepEqual(got.Frequencies, wantFreqs) {
		t.Errorf("frequencies: got %v, wanted %v", got.Frequencies, wantFreqs)
	}
	if got.HasImaginaryFreq {
		t.Errorf("no imaginary frequencies expected")
	}
	if got.DispersionCorrection == nil || *got.DispersionCorrection != -0.0009103157 {
		t.Errorf("dispersion: got %v", got.DispersionCorrection)
	}
	if got.SolvationEnergy == nil || *got.SolvationEnergy != 1.87/thermo.HartreeToKcal {
		t.Errorf("solvation: got %v", got.SolvationEnergy)
	}
	if got.CounterpoiseCorrection != nil {
		t.Errorf("counterpoise: got %v, wanted nil", got.CounterpoiseCorrection)
	}
}

// a single-point file has no thermochemistry; every thermal field
// must default to zero without failing extraction
func TestExtractSinglePoint(t *testing.T) {
	p := New()
	got, err := p.ExtractEnergies("testdata/h2o_sp.log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ElectronicEnergy != -76.0612429817 {
		t.Errorf("electronic: got %v, wanted %v", got.ElectronicEnergy, -76.0612429817)
	}
	if got.ZeroPointEnergy != 0 || got.ThermalCorrection != 0 || got.GibbsCorrection != 0 {
		t.Errorf("thermal fields should default to zero: %+v", got)
	}
	if len(got.Frequencies) != 0 {
		t.Errorf("frequencies: got %v, wanted none", got.Frequencies)
	}
}

func TestExtractImaginary(t *testing.T) {
	p := New()
	got, err := p.ExtractEnergies("testdata/ts.log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.HasImaginaryFreq {
		t.Errorf("transition state should report an imaginary frequency")
	}
	if len(got.Frequencies) != 4 || got.Frequencies[0] != -482.1123 {
		t.Errorf("frequencies: got %v", got.Frequencies)
	}
}

func TestExtractIdempotent(t *testing.T) {
	p := New()
	first, err := p.ExtractEnergies("testdata/h2o_freq.log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.ExtractEnergies("testdata/h2o_freq.log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestExtractMissingFile(t *testing.T) {
	p := New()
	_, err := p.ExtractEnergies("testdata/no_such_file.log")
	if !errors.Is(err, qm.ErrFileNotFound) {
		t.Errorf("got %v, wanted ErrFileNotFound", err)
	}
}

func TestExtractValidation(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{
			"positive electronic energy",
			"SCF Done:  E(RHF) =  76.123456     A.U. after 5 cycles\n",
		},
		{
			"electronic energy below range",
			"SCF Done:  E(RHF) =  -987654.3     A.U. after 5 cycles\n",
		},
	}
	p := New()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.log")
			if err := os.WriteFile(path, []byte(test.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := p.ExtractEnergies(path)
			var verr *qm.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("got %v, wanted ValidationError", err)
			}
		})
	}
}
