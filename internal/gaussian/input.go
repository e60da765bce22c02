package gaussian

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed input.tmpl
var templates embed.FS

var inputTemplate = template.Must(template.ParseFS(templates, "input.tmpl"))

type inputCard struct {
	Check    string
	Method   string
	Keywords []string
	Title    string
}

// CreateInput writes a minimal Gaussian input skeleton: link-0 lines,
// the route card and a single-atom placeholder geometry the user is
// expected to replace. Best effort only; any I/O failure reports
// false.
func (p *Program) CreateInput(path, method string, keywords []string) bool {
	f, err := os.Create(path)
	if err != nil {
		return false
	}
	defer f.Close()
	base := strings.TrimSuffix(path, filepath.Ext(path))
	err = inputTemplate.Execute(f, inputCard{
		Check:    base,
		Method:   method,
		Keywords: keywords,
		Title:    "Generated by cck",
	})
	return err == nil
}
