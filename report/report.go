// Package report renders a color comparison result as text through a
// pongo2 template, either the built-in one or a caller-supplied file.
package report

import (
	"fmt"
	"math"

	"github.com/flosch/pongo2"

	"github.com/KeleWarg/design-theme-library-sub003/compare"
)

const defaultTemplate = `{{ total }} source colors: {{ summary.Match }} match, {{ summary.Similar }} similar, {{ summary.Different }} different, {{ summary.Missing }} missing
{% for row in rows %}{{ row.id }}  {{ row.source }} -> {{ row.target }}  dE {{ row.delta }}  {{ row.status }}
{% endfor %}result: {% if pass %}PASS{% else %}FAIL{% endif %}
`

var defaultTpl = pongo2.Must(pongo2.FromString(defaultTemplate))

// Render formats the delta records with the built-in template.
func Render(deltas []compare.ColorDelta) (string, error) {
	return execute(defaultTpl, deltas)
}

// RenderFile formats the delta records with the template at path.
func RenderFile(deltas []compare.ColorDelta, path string) (string, error) {
	tpl, err := pongo2.FromFile(path)
	if err != nil {
		return "", err
	}
	return execute(tpl, deltas)
}

func execute(tpl *pongo2.Template, deltas []compare.ColorDelta) (string, error) {
	rows := make([]map[string]interface{}, len(deltas))
	for i, d := range deltas {
		target := "-"
		if d.Target != nil {
			target = d.Target.RGB.Hex()
		}
		rows[i] = map[string]interface{}{
			"id":     d.Source.ID,
			"source": d.Source.RGB.Hex(),
			"target": target,
			"delta":  formatDelta(d.DeltaE),
			"status": string(d.Status),
		}
	}

	summary := compare.Summarize(deltas)
	return tpl.Execute(pongo2.Context{
		"rows":    rows,
		"total":   len(deltas),
		"summary": summary,
		"pass":    summary.Pass(),
	})
}

func formatDelta(d float64) string {
	if math.IsInf(d, 1) {
		return "-"
	}
	return fmt.Sprintf("%.2f", d)
}
