// Package renderer turns ledger view models into markdown reports.
// Each view is a main template plus named partials, all embedded.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

//go:embed *.md
var templates embed.FS

// Currency is the display currency code of every report.
const Currency = "PEN"

// FormatMoney renders an amount with the currency's symbol and grouping,
// e.g. "S/1,234.50".
func FormatMoney(d decimal.Decimal) string {
	units := d.Shift(2).Round(0).IntPart()
	return money.New(units, Currency).Display()
}

// FormatPct renders a percentage with one decimal, e.g. "55.0%".
func FormatPct(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

var funcs = template.FuncMap{
	"money": FormatMoney,
	"pct":   FormatPct,
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Funcs(funcs).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
