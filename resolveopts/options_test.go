package resolveopts

import "testing"

func TestEdgePreset(t *testing.T) {
	o := EdgePreset(nil)
	if !o.HasCondition("edge-light") || o.HasCondition("node") {
		t.Errorf("Conditions = %v", o.Conditions)
	}
	if o.EnableNodeNative {
		t.Error("edge runtime cannot load native modules")
	}
	if len(o.Extensions) == 0 || o.Extensions[0] != ".tsx" {
		t.Errorf("Extensions = %v", o.Extensions)
	}
}

func TestAlias(t *testing.T) {
	o := EdgePreset(map[string]string{
		"next/server": "next/dist/server/web/exports/index.js",
		"@lib/":       "/app/lib/",
		"@lib/deep/":  "/app/deep/",
	})
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"next/server", "next/dist/server/web/exports/index.js", true},
		{"@lib/util", "/app/lib/util", true},
		{"@lib/deep/x", "/app/deep/x", true},
		{"react", "react", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := o.Alias(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Alias(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
