package templates

import (
	"bytes"
	"strings"
	"text/template"
)

// GetTemplatedStr renders text template with specified object.
// Missed keys are treated as errors
func GetTemplatedStr(text *string, obj interface{}) (string, error) {
	funcMap := template.FuncMap{
		"ToLower": strings.ToLower,
	}

	tmpl, err := template.New("s").Funcs(funcMap).Option("missingkey=error").Parse(*text)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err = tmpl.Execute(buf, obj); err != nil {
		return "", err
	}

	return buf.String(), nil
}
