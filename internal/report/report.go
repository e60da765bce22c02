// Package report turns batch results into the user-facing tables:
// sorted text, CSV and JSON, plus a small statistical summary.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"comchemkit/internal/batch"
	"comchemkit/internal/thermo"
	"comchemkit/pkg/qm"
)

// Row is one output file reduced to report columns. Energies are in
// Hartree; Gibbs is the composed G(T, conc) including the
// standard-state phase correction.
type Row struct {
	File       string  `json:"file"`
	Electronic float64 `json:"electronic_energy"`
	ZPE        float64 `json:"zero_point_energy"`
	Enthalpy   float64 `json:"enthalpy_correction"`
	Gibbs      float64 `json:"gibbs_free_energy"`
	Entropy    float64 `json:"entropy"`
	NImag      int     `json:"n_imaginary"`
	Status     string  `json:"status"`
	Err        string  `json:"error,omitempty"`
}

// Sortable columns, numbered as the CLI exposes them.
const (
	ColFile = iota
	ColElectronic
	ColGibbs
	ColZPE
	ColStatus
)

// FromResults builds rows, composing each file's Gibbs free energy at
// the requested temperature and concentration.
func FromResults(results []batch.Result, tempK, conc float64) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		row := Row{
			File:       r.Path,
			Electronic: r.Energies.ElectronicEnergy,
			ZPE:        r.Energies.ZeroPointEnergy,
			Enthalpy:   r.Energies.EnthalpyCorrection,
			Entropy:    r.Energies.Entropy,
			Status:     r.Status.String(),
		}
		if r.Err != nil {
			row.Err = r.Err.Error()
		} else {
			row.Gibbs = thermo.GibbsFreeEnergy(r.Energies, tempK, conc)
		}
		for _, f := range r.Energies.Frequencies {
			if f < 0 {
				row.NImag++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Sort orders rows by the given column, ties broken by file name so
// output is reproducible.
func Sort(rows []Row, col int) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch col {
		case ColElectronic:
			return rows[i].Electronic < rows[j].Electronic
		case ColGibbs:
			return rows[i].Gibbs < rows[j].Gibbs
		case ColZPE:
			return rows[i].ZPE < rows[j].ZPE
		case ColStatus:
			return rows[i].Status < rows[j].Status
		default:
			return rows[i].File < rows[j].File
		}
	})
}

// WriteText prints an aligned table.
func WriteText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "File\tE(el)\tZPE\tH corr\tG\tS\tNImag\tStatus")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.3f\t%d\t%s\n",
			r.File, r.Electronic, r.ZPE, r.Enthalpy, r.Gibbs,
			r.Entropy, r.NImag, r.Status)
	}
	return tw.Flush()
}

var columns = []string{
	"File",
	"Electronic Energy (Eh)",
	"ZPE (Eh)",
	"Enthalpy Corr (Eh)",
	"Gibbs Free Energy (Eh)",
	"Entropy (cal/mol-K)",
	"Imaginary Freqs",
	"Status",
	"Error",
}

// WriteCSV emits a header row plus one record per file.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.File,
			strconv.FormatFloat(r.Electronic, 'f', 6, 64),
			strconv.FormatFloat(r.ZPE, 'f', 6, 64),
			strconv.FormatFloat(r.Enthalpy, 'f', 6, 64),
			strconv.FormatFloat(r.Gibbs, 'f', 6, 64),
			strconv.FormatFloat(r.Entropy, 'f', 3, 64),
			strconv.Itoa(r.NImag),
			r.Status,
			r.Err,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON emits the rows as an indented array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Summary aggregates a batch for the run footer.
type Summary struct {
	Files       int
	Completed   int
	Errored     int
	Interrupted int
	MeanGibbs   float64
	StdDevGibbs float64
}

// Summarize counts statuses and computes mean and standard deviation
// of the Gibbs energies over cleanly extracted files.
func Summarize(rows []Row) Summary {
	s := Summary{Files: len(rows)}
	var gibbs []float64
	for _, r := range rows {
		switch r.Status {
		case qm.StatusCompleted.String():
			s.Completed++
		case qm.StatusError.String():
			s.Errored++
		case qm.StatusInterrupted.String():
			s.Interrupted++
		}
		if r.Err == "" {
			gibbs = append(gibbs, r.Gibbs)
		}
	}
	if len(gibbs) > 0 {
		s.MeanGibbs = stat.Mean(gibbs, nil)
	}
	if len(gibbs) > 1 {
		s.StdDevGibbs = stat.StdDev(gibbs, nil)
	}
	return s
}
