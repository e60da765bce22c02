package qm

// Program is the contract a quantum chemistry backend implements to
// plug into the toolkit. Implementations hold no per-call state: every
// method is a pure function of the input file, so one instance is safe
// for concurrent use across any number of worker goroutines.
type Program interface {
	// Name returns the stable display name, e.g. "Gaussian".
	Name() string

	// IsValidOutput is a cheap structural sniff used to reject files
	// before extraction. It never fails; unreadable input reports false.
	IsValidOutput(path string) bool

	// ExtractEnergies reads one output file and returns its energy
	// components. A file that cannot be read at all is a hard error
	// wrapping ErrFileNotFound; missing sections degrade to zero
	// defaults. Results that fail plausibility checks return a
	// *ValidationError.
	ExtractEnergies(path string) (EnergyComponents, error)

	// Metadata recovers the calculation identification. It never
	// fails: unreadable input yields empty metadata with StatusError.
	Metadata(path string) CalculationMetadata

	// CheckStatus classifies the file's completion state. Unreadable
	// input yields StatusUnknown, which is distinct from
	// StatusInterrupted (readable but no recognized marker).
	CheckStatus(path string) JobStatus

	// CreateInput writes a minimal input-file skeleton. Best effort:
	// reports false on any I/O failure instead of propagating it.
	CreateInput(path, method string, keywords []string) bool

	// Extensions lists the file suffixes this backend claims. The
	// toolkit itself does not filter by suffix; that is CLI glue.
	Extensions() []string
}
