package gaussian

import (
	"bufio"
	"strings"

	"go.uber.org/zap"

	"comchemkit/internal/thermo"
	"comchemkit/pkg/qm"
)

// Metadata recovers version, method, basis set and job keywords from
// the header and route sections. Unrecognized methods or bases simply
// leave the field empty. The call never fails: a file that cannot be
// read yields empty metadata with StatusError, logged for the caller
// to surface.
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
		meta.ProgramVersion = "Gaussian " + m[1] + " " + m[2]
	}

	route := routeSection(content)
	if m := knownMethods.FindStringSubmatch(route); m != nil {
		meta.Method = m[1]
	}
	if m := knownBases.FindStringSubmatch(route); m != nil {
		meta.BasisSet = m[1]
	}
	for _, field := range strings.Fields(route) {
		if jobKeyword.MatchString(field) {
			meta.Keywords = append(meta.Keywords, field)
		}
	}

	if m := solventName.FindStringSubmatch(content); m != nil {
		meta.Solvent = m[1]
	}
	meta.Temperature = qm.FindFloat(content, temperature, thermo.DefaultTemperature)
	meta.Pressure = qm.FindFloat(content, pressure, thermo.DefaultPressure)
	meta.Status = p.CheckStatus(path)
	return meta
}

// routeSection returns the echoed route card: the first line whose
// trimmed form starts with '#' plus its continuation lines, up to the
// closing dashed rule or a blank line.
func routeSection(content string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	var (
		route   strings.Builder
		inRoute bool
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case !inRoute && strings.HasPrefix(line, "#"):
			inRoute = true
			route.WriteString(line)
			route.WriteString(" ")
		case inRoute && (line == "" || strings.HasPrefix(line, "----")):
			return route.String()
		case inRoute:
			route.WriteString(line)
			route.WriteString(" ")
		}
	}
	return route.String()
}
