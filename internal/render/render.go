// Package render turns a finished slide set into one self-contained HTML
// document: inlined styling, inlined navigation script, no external assets.
// Rendering is a pure function of its input, so the same slides always
// produce byte-identical output.
package render

import (
	"embed"
	"html"
	"html/template"
	"strings"

	"github.com/russross/blackfriday/v2"
)

//go:embed slideshow.html.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("slideshow.html.tmpl").Funcs(template.FuncMap{
	"markdown": markdown,
}).ParseFS(templateFS, "slideshow.html.tmpl"))

// Slide is the renderer's view of one finished slide.
type Slide struct {
	Title    string
	Bullets  []string
	Support  string
	ImageURL string
}

type page struct {
	Topic  string
	Slides []Slide
}

// HTML renders the complete slideshow document. Slide text is escaped by the
// template engine; it originates from an untrusted model response.
func HTML(topic string, slides []Slide) (string, error) {
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, "slideshow.html.tmpl", page{Topic: topic, Slides: slides}); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// mdRenderer restricts what markdown syntax may produce: no script-scheme
// links, no images. The document must stay self-contained and inert apart
// from the slide image URLs the template itself emits.
var mdRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
	Flags: blackfriday.CommonHTMLFlags | blackfriday.Safelink | blackfriday.SkipImages,
})

// markdown renders light formatting (emphasis, inline code) in supporting
// text. The input is HTML-escaped before blackfriday runs, so raw markup in
// the model response stays inert, and the renderer flags keep markdown
// syntax from producing unsafe links or embedded images.
func markdown(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	return template.HTML(blackfriday.Run([]byte(escaped), blackfriday.WithRenderer(mdRenderer)))
}
