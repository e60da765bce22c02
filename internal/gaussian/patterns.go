package gaussian

import "regexp"

// Patterns for locating numeric fields and status markers in Gaussian
// log files. Each value-extraction pattern carries exactly one
// capturing group, per the qm.FindFloat contract.
var (
	normalTermination = regexp.MustCompile(`Normal termination of Gaussian`)
	errorMarkers      = regexp.MustCompile(`Error termination|Fatal Error|Erroneous write|File lengths|Error in internal coordinate system`)
	pcmMarkers        = regexp.MustCompile(`Convergence failure -- run terminated|PCM cycles did not converge|PCM optimization failed`)

	scfEnergy        = regexp.MustCompile(`SCF Done:\s+E\([^)]+\)\s*=\s*([-\d.]+)`)
	zeroPoint        = regexp.MustCompile(`Zero-point correction=\s*([-\d.]+)`)
	thermalEnergy    = regexp.MustCompile(`Thermal correction to Energy=\s*([-\d.]+)`)
	thermalEnthalpy  = regexp.MustCompile(`Thermal correction to Enthalpy=\s*([-\d.]+)`)
	thermalGibbs     = regexp.MustCompile(`Thermal correction to Gibbs Free Energy=\s*([-\d.]+)`)
	nuclearRepulsion = regexp.MustCompile(`nuclear repulsion energy\s+([-\d.]+)\s+Hartrees`)
	// the Total row of the E/CV/S thermochemistry table
	entropyRow = regexp.MustCompile(`(?m)^\s*Total\s+[-\d.]+\s+[-\d.]+\s+([-\d.]+)\s*$`)

	dispersionEnergy = regexp.MustCompile(`Dispersion energy=\s*([-\d.]+)`)
	// SMD non-electrostatic term, reported in kcal/mol
	smdCDSEnergy = regexp.MustCompile(`SMD-CDS \(non-electrostatic\) energy\s+\(kcal/mol\)\s*=\s*([-\d.]+)`)
	counterpoise = regexp.MustCompile(`Counterpoise corrected energy =\s*([-\d.]+)`)

	// frequency blocks list up to three modes per row
	frequencies = regexp.MustCompile(`Frequencies\s+--\s*([-\d.]+)\s*([-\d.]+)?\s*([-\d.]+)?`)
	freqBlock   = regexp.MustCompile(`Frequencies\s+--\s*([-\d.]+)(?:\s+([-\d.]+))?(?:\s+([-\d.]+))?\s*Red\. masses\s+--\s*([-\d.]+)(?:\s+([-\d.]+))?(?:\s+([-\d.]+))?\s*Frc consts\s+--\s*([-\d.]+)(?:\s+([-\d.]+))?(?:\s+([-\d.]+))?\s*IR Inten\s+--\s*([-\d.]+)(?:\s+([-\d.]+))?(?:\s+([-\d.]+))?`)

	programVersion = regexp.MustCompile(`Gaussian\s+(\d+),?\s+Revision\s+([A-Z]\.\d+)`)
	temperature    = regexp.MustCompile(`Temperature\s+([\d.]+)\s+Kelvin`)
	pressure       = regexp.MustCompile(`Pressure\s+([\d.]+)\s+Atm`)
	solventName    = regexp.MustCompile(`Solvent\s+:\s+([A-Za-z0-9-]+)`)

	// controlled vocabularies for the route section; longer labels
	// precede their prefixes so alternation picks the specific one
	knownMethods = regexp.MustCompile(`(CAM-B3LYP|B3LYP|M06|PBE0|wB97XD|MP2|CCSD|G4)`)
	knownBases   = regexp.MustCompile(`(aug-cc-pVTZ|aug-cc-pVDZ|cc-pVTZ|cc-pVDZ|6-311G|6-31G|def2-TZVP|def2-SVP)`)
	jobKeyword   = regexp.MustCompile(`(?i)^(opt\S*|freq\S*|scrf\S*|td\S*|nmr\S*|irc\S*|scan|stable\S*)$`)
)
