// Package templates holds the server-rendered admin dashboard and success pages.
package templates

import (
	"embed"
	"html/template"
	"strings"

	"cazpay/utils"
)

//go:embed *.html
var files embed.FS

// Load parses the embedded page templates with the helpers they use.
func Load() *template.Template {
	funcs := template.FuncMap{
		"gbp":   utils.FormatGBP,
		"join":  strings.Join,
		"upper": strings.ToUpper,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))
}
