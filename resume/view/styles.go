package view

import (
	"sort"
	"strings"

	"resume-builder/resume/model"
)

// Style is the cosmetic treatment of a template: a font class for the page
// container plus inline CSS declarations.
type Style struct {
	Class string
	CSS   map[string]string
}

var baseCSS = map[string]string{
	"min-height": "1056px",
	"padding":    "30px",
}

var templateStyles = map[model.TemplateID]Style{
	model.TemplateClassic: {},
	model.TemplateModern: {
		Class: "font-sans",
		CSS: map[string]string{
			"border-top":  "5px solid #3b82f6",
			"font-family": "'Inter', sans-serif",
		},
	},
	model.TemplateCreative: {
		Class: "font-serif",
		CSS: map[string]string{
			"background": "linear-gradient(to bottom right, #ffffff, #f3f4f6)",
			"box-shadow": "0 10px 25px rgba(0, 0, 0, 0.1)",
		},
	},
	model.TemplateMinimalist: {
		Class: "font-mono",
		CSS: map[string]string{
			"border-left":  "1px solid #e5e7eb",
			"border-right": "1px solid #e5e7eb",
		},
	},
}

// StyleFor returns the style of the template, merged over the base page
// style. Unknown identifiers render as classic.
func StyleFor(id model.TemplateID) Style {
	tpl, ok := templateStyles[id]
	if !ok {
		tpl = templateStyles[model.DefaultTemplate]
	}
	css := make(map[string]string, len(baseCSS)+len(tpl.CSS))
	for k, v := range baseCSS {
		css[k] = v
	}
	for k, v := range tpl.CSS {
		css[k] = v
	}
	return Style{Class: tpl.Class, CSS: css}
}

// Inline renders the CSS declarations sorted by property name.
func (s Style) Inline() string {
	keys := make([]string, 0, len(s.CSS))
	for k := range s.CSS {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s.CSS[k])
		b.WriteByte(';')
	}
	return b.String()
}
