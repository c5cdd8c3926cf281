// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Embed the shared layout templates (head, navbar, alerts, foot).
//
//go:embed templates/*.gohtml
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the shared set once. Feature sets refer to
// its blocks by name.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
