// Package qm defines the program-independent data model for quantum
// chemistry output processing, the contract every supported program
// must satisfy, and the registry that resolves program names to
// backend instances.
package qm

// JobStatus classifies the completion state of one output file. It is
// recomputed on every classification call and never cached here.
type JobStatus int

const (
	StatusUnknown JobStatus = iota
	StatusCompleted
	StatusError
	StatusRunning
	StatusInterrupted
)

func (s JobStatus) String() string {
	switch s {
	case StatusCompleted:
		return "COMPLETED"
	case StatusError:
		return "ERROR"
	case StatusRunning:
		return "RUNNING"
	case StatusInterrupted:
		return "INTERRUPTED"
	default:
		return "UNKNOWN"
	}
}

// EnergyComponents holds the numeric results extracted from one output
// file. All energies are in the backend's native unit (Hartree for the
// Gaussian and ORCA backends); frequencies are in cm⁻¹. Optional
// program-specific corrections are nil when the output reports none.
type EnergyComponents struct {
	ElectronicEnergy   float64
	ZeroPointEnergy    float64
	ThermalCorrection  float64
	EnthalpyCorrection float64
	GibbsCorrection    float64
	Entropy            float64
	NuclearRepulsion   float64
	Frequencies        []float64
	HasImaginaryFreq   bool

	DispersionCorrection   *float64
	SolvationEnergy        *float64
	CounterpoiseCorrection *float64
}

// CalculationMetadata identifies what was computed. Fields the output
// does not report are left empty; that is not an error.
type CalculationMetadata struct {
	ProgramVersion string
	Method         string
	BasisSet       string
	Keywords       []string
	Solvent        string
	Temperature    float64 // Kelvin
	Pressure       float64 // atm
	FilePath       string
	Status         JobStatus
}
