// Package orca implements the toolkit contract for the ORCA package.
// It covers the same contract surface as the Gaussian backend with a
// smaller pattern set; it exists both for ORCA users and as the proof
// that new programs plug in through the registry alone.
package orca

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"comchemkit/internal/thermo"
	"comchemkit/pkg/qm"
)

func init() {
	qm.Register("orca", func() qm.Program { return New() })
}

var (
	terminatedNormally = regexp.MustCompile(`ORCA TERMINATED NORMALLY`)
	errorMarkers       = regexp.MustCompile(`ORCA finished by error termination|aborting the run`)

	finalEnergy    = regexp.MustCompile(`FINAL SINGLE POINT ENERGY\s+([-\d.]+)`)
	zeroPoint      = regexp.MustCompile(`Zero point energy\s+\.+\s+([-\d.]+)`)
	gibbsMinusEel  = regexp.MustCompile(`G-E\(el\)\s+\.+\s+([-\d.]+)`)
	thermalEnergy  = regexp.MustCompile(`Total thermal correction\s+([-\d.]+)`)
	enthalpyTerm   = regexp.MustCompile(`Thermal Enthalpy correction\s+\.+\s+([-\d.]+)`)
	nuclearRep     = regexp.MustCompile(`Nuclear Repulsion\s+:\s+([-\d.]+)`)
	frequencyLine  = regexp.MustCompile(`(?m)^\s*\d+:\s+([-\d.]+)\s+cm\*\*-1`)
	programVersion = regexp.MustCompile(`Program Version\s+(\S+)`)
	temperature    = regexp.MustCompile(`Temperature\s+\.+\s+([\d.]+)\s+K`)
	dispersionTerm = regexp.MustCompile(`Dispersion correction\s+([-\d.]+)`)

	knownMethods = regexp.MustCompile(`(CAM-B3LYP|B3LYP|M06|PBE0|wB97X-D3|MP2|DLPNO-CCSD\(T\)|CCSD\(T\)|CCSD)`)
	knownBases   = regexp.MustCompile(`(aug-cc-pVTZ|aug-cc-pVDZ|cc-pVTZ|cc-pVDZ|def2-TZVPP|def2-TZVP|def2-SVP)`)
)

// Program parses ORCA output files.
type Program struct {
	log    *zap.Logger
	bounds qm.EnergyBounds
}

func New() *Program {
	return &Program{
		log:    zap.NewNop(),
		bounds: qm.EnergyBounds{MinElectronic: -10000, MaxElectronic: 0},
	}
}

func (p *Program) Name() string { return "ORCA" }

func (p *Program) Extensions() []string { return []string{".out", ".log"} }

func (p *Program) SetLogger(l *zap.Logger) {
	if l != nil {
		p.log = l
	}
}

// IsValidOutput looks for the spaced ORCA banner near the top of the
// file.
func (p *Program) IsValidOutput(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan() && i < 100; i++ {
		if strings.Contains(scanner.Text(), "O   R   C   A") {
			return true
		}
	}
	return false
}

func (p *Program) ExtractEnergies(path string) (qm.EnergyComponents, error) {
	content, err := readOutput(path)
	if err != nil {
		return qm.EnergyComponents{}, err
	}

	var e qm.EnergyComponents
	e.ElectronicEnergy = qm.FindFloat(content, finalEnergy, 0)
	e.ZeroPointEnergy = qm.FindFloat(content, zeroPoint, 0)
	e.ThermalCorrection = qm.FindFloat(content, thermalEnergy, 0)
	e.EnthalpyCorrection = qm.FindFloat(content, enthalpyTerm, 0)
	e.GibbsCorrection = qm.FindFloat(content, gibbsMinusEel, 0)
	e.NuclearRepulsion = qm.FindFloat(content, nuclearRep, 0)

	for _, m := range frequencyLine.FindAllStringSubmatch(content, -1) {
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		// ORCA lists the zero translational/rotational modes too
		if f == 0 {
			continue
		}
		e.Frequencies = append(e.Frequencies, f)
		if f < 0 {
			e.HasImaginaryFreq = true
		}
	}

	if v, ok := qm.LookupFloat(content, dispersionTerm); ok {
		e.DispersionCorrection = &v
	}

	if err := p.bounds.Validate(e); err != nil {
		return qm.EnergyComponents{}, err
	}
	return e, nil
}

func (p *Program) Metadata(path string) qm.CalculationMetadata {
	meta := qm.CalculationMetadata{
		FilePath:    path,
		Temperature: thermo.DefaultTemperature,
		Pressure:    thermo.DefaultPressure,
	}
	content, err := readOutput(path)
	if err != nil {
		meta.Status = qm.StatusError
		p.log.Warn("metadata unavailable, output unreadable",
			zap.String("file", path), zap.Error(err))
		return meta
	}
	if m := programVersion.FindStringSubmatch(content); m != nil {
		meta.ProgramVersion = "ORCA " + m[1]
	}
	if m := knownMethods.FindStringSubmatch(content); m != nil {
		meta.Method = m[1]
	}
	if m := knownBases.FindStringSubmatch(content); m != nil {
		meta.BasisSet = m[1]
	}
	meta.Temperature = qm.FindFloat(content, temperature, thermo.DefaultTemperature)
	meta.Status = p.CheckStatus(path)
	return meta
}

// CheckStatus mirrors the classification order of the Gaussian
// backend: termination beats error markers, anything readable but
// unrecognized is INTERRUPTED, unreadable is UNKNOWN.
func (p *Program) CheckStatus(path string) qm.JobStatus {
	content, err := readOutput(path)
	if err != nil {
		return qm.StatusUnknown
	}
	switch {
	case terminatedNormally.MatchString(content):
		return qm.StatusCompleted
	case errorMarkers.MatchString(content):
		return qm.StatusError
	default:
		return qm.StatusInterrupted
	}
}

// CreateInput writes a minimal ORCA input skeleton with a placeholder
// geometry.
func (p *Program) CreateInput(path, method string, keywords []string) bool {
	f, err := os.Create(path)
	if err != nil {
		return false
	}
	defer f.Close()
	route := method
	if len(keywords) > 0 {
		route += " " + strings.Join(keywords, " ")
	}
	_, err = fmt.Fprintf(f, "! %s\n\n# Generated by cck\n\n* xyz 0 1\nC 0.0 0.0 0.0\n*\n", route)
	return err == nil
}

func readOutput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", qm.ErrFileNotFound, path)
	}
	return string(b), nil
}
