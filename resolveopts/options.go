package resolveopts

import "strings"

// OptionsContext holds the resolution rules for one environment.
//
// Thread-safety: treat as immutable once handed to a transition.
type OptionsContext struct {
	// Aliases maps a request (or a request prefix ending in "/") to its replacement.
	Aliases           map[string]string
	Extensions        []string
	Conditions        []string
	EnableNodeModules bool
	EnableNodeNative  bool
	BrowserField      bool
}

// EdgePreset returns the resolution rules for the edge runtime.
// aliases are applied on top of an empty import map.
func EdgePreset(aliases map[string]string) *OptionsContext {
	a := make(map[string]string, len(aliases))
	for k, v := range aliases {
		a[k] = v
	}
	return &OptionsContext{
		Aliases:           a,
		Extensions:        []string{".tsx", ".ts", ".jsx", ".js", ".mjs", ".json"},
		Conditions:        []string{"edge-light", "worker", "browser", "import", "default"},
		EnableNodeModules: true,
	}
}

// Alias maps request through the alias table. Exact entries win over
// prefix entries; the longest prefix wins among prefixes.
func (o *OptionsContext) Alias(request string) (string, bool) {
	if v, ok := o.Aliases[request]; ok {
		return v, true
	}
	best := ""
	for k := range o.Aliases {
		if strings.HasSuffix(k, "/") && strings.HasPrefix(request, k) && len(k) > len(best) {
			best = k
		}
	}
	if best == "" {
		return request, false
	}
	return o.Aliases[best] + strings.TrimPrefix(request, best), true
}

// HasCondition reports whether name is one of the export conditions.
func (o *OptionsContext) HasCondition(name string) bool {
	for _, c := range o.Conditions {
		if c == name {
			return true
		}
	}
	return false
}
