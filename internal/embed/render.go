// Package embed renders the static pages served to link-preview crawlers.
package embed

import (
	"bytes"
	"text/template"
)

const (
	// ContentType is sent with every rendered page.
	ContentType = "text/html; charset=utf-8"
	// SiteName is advertised through og:site_name.
	SiteName = "Piped"
)

// Page holds the values substituted into an embed document. Fields are
// written verbatim: Title and Description must already be HTML-escaped.
// URL and Image are not escaped here or by the handlers.
type Page struct {
	URL         string
	Title       string
	Description string
	Image       string
}

var pageTemplate = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta http-equiv="refresh" content="0; url={{.URL}}" />
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  <meta property="og:title" content="{{.Title}}">
  <meta property="og:description" content="{{.Description}}">
  <meta property="og:site_name" content="{{.SiteName}}">
  <meta property="og:image" content="{{.Image}}">
</head>
</html>`))

// Render produces the embed document for p.
func Render(p Page) []byte {
	var buf bytes.Buffer
	data := struct {
		Page
		SiteName string
	}{Page: p, SiteName: SiteName}
	// Executing into a bytes.Buffer with plain string fields cannot fail.
	_ = pageTemplate.Execute(&buf, data)
	return buf.Bytes()
}
