// Package web содержит вшитые в бинарь HTML-шаблоны страниц.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
