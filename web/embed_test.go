package web

import "testing"

func TestTemplates(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{"tracking.html", "login.html", "dashboard.html", "head", "flash", "nav"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("template %q not defined", name)
		}
	}
}
