package qm

import (
	"math"
	"regexp"
	"strconv"
)

// FindFloat searches content for the first match of re, which must
// carry exactly one capturing group, and parses the captured text as a
// float. No match and a malformed numeral are treated identically: the
// default is returned. Missing data degrades to the default, never to
// a failure.
func FindFloat(content string, re *regexp.Regexp, def float64) float64 {
	if v, ok := LookupFloat(content, re); ok {
		return v
	}
	return def
}

// LookupFloat is FindFloat with an explicit found report, for optional
// fields that distinguish "absent" from "zero".
func LookupFloat(content string, re *regexp.Regexp) (float64, bool) {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// EnergyBounds is the plausibility policy applied to extracted
// results. The limits are backend policy, not physical law: a backend
// reporting in other units supplies its own range.
type EnergyBounds struct {
	MinElectronic float64
	MaxElectronic float64
}

// Validate rejects results that almost always indicate the wrong
// section was matched (restart fragments, partial files). Any
// violation fails the whole extraction.
func (b EnergyBounds) Validate(e EnergyComponents) error {
	if math.IsNaN(e.ElectronicEnergy) || math.IsInf(e.ElectronicEnergy, 0) {
		return &ValidationError{
			Field:  "electronic energy",
			Value:  e.ElectronicEnergy,
			Reason: "not a finite number",
		}
	}
	if e.ElectronicEnergy > b.MaxElectronic || e.ElectronicEnergy < b.MinElectronic {
		return &ValidationError{
			Field:  "electronic energy",
			Value:  e.ElectronicEnergy,
			Reason: "outside plausible range",
		}
	}
	if e.ZeroPointEnergy < 0 {
		return &ValidationError{
			Field:  "zero-point energy",
			Value:  e.ZeroPointEnergy,
			Reason: "negative",
		}
	}
	return nil
}
