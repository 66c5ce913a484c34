package song

import "text/template"

// verseSource holds one named template per verse shape. Each template
// renders exactly two lines separated by a single newline; the data is the
// current count.
const verseSource = `{{define "more"}}{{.}} {{unit .}} of beer on the wall, {{.}} {{unit .}} of beer.
Take one down and pass it around, {{dec .}} {{unit (dec .)}} of beer on the wall.{{end}}
{{define "last"}}{{.}} {{unit .}} of beer on the wall, {{.}} {{unit .}} of beer.
Take one down and pass it around, no more bottles of beer on the wall.{{end}}
{{define "empty"}}No more bottles of beer on the wall, no more bottles of beer.
Go to the store and buy some more, {{start}} bottles of beer on the wall.{{end}}`

const (
	tmplMore  = "more"
	tmplLast  = "last"
	tmplEmpty = "empty"
)

var verseTemplates = template.Must(template.New("verses").Funcs(makeFuncMap()).Parse(verseSource))

func makeFuncMap() template.FuncMap {
	return template.FuncMap{
		"unit":  Unit,
		"dec":   dec,
		"start": func() int { return Start },
	}
}

// dec returns i - 1.
func dec(i int) int {
	return i - 1
}
