package compiletime

import (
	"sort"

	"github.com/wippyai/edgebundle/ecmascript"
)

// Runtime identifies the execution environment code is compiled for.
type Runtime string

const (
	RuntimeEdge    Runtime = "edge"
	RuntimeNodeJS  Runtime = "nodejs"
	RuntimeBrowser Runtime = "browser"
)

// Environment is the target of a compilation.
type Environment struct {
	Runtime Runtime
	NodeEnv string
}

// Info holds the defines and free variables for one environment.
// Defines replace member expressions (process.env.NODE_ENV) and free
// variables replace unbound identifiers; both map to JavaScript source text.
//
// Thread-safety: immutable after New.
type Info struct {
	defines  map[string]string
	freeVars map[string]string
	env      Environment
}

// New creates an Info. The maps are copied.
func New(env Environment, defines, freeVars map[string]string) *Info {
	return &Info{
		env:      env,
		defines:  copyMap(defines),
		freeVars: copyMap(freeVars),
	}
}

// EdgeInfo returns the compile-time info for the edge runtime.
// extra defines are applied on top of the built-in ones.
func EdgeInfo(nodeEnv string, extra map[string]string) *Info {
	if nodeEnv == "" {
		nodeEnv = "development"
	}
	defines := map[string]string{
		"process.env.NEXT_RUNTIME": `"edge"`,
		"process.env.NODE_ENV":     ecmascript.Stringify(nodeEnv),
		"process.turbopack":        "true",
	}
	for k, v := range extra {
		defines[k] = v
	}
	return &Info{
		env:      Environment{Runtime: RuntimeEdge, NodeEnv: nodeEnv},
		defines:  defines,
		freeVars: map[string]string{},
	}
}

// Environment returns the compilation target.
func (i *Info) Environment() Environment {
	return i.env
}

// Define returns the replacement for a member expression.
func (i *Info) Define(name string) (string, bool) {
	v, ok := i.defines[name]
	return v, ok
}

// FreeVar returns the replacement for an unbound identifier.
func (i *Info) FreeVar(name string) (string, bool) {
	v, ok := i.freeVars[name]
	return v, ok
}

// DefineNames returns the define keys in sorted order.
func (i *Info) DefineNames() []string {
	return sortedKeys(i.defines)
}

// FreeVarNames returns the free variable names in sorted order.
func (i *Info) FreeVarNames() []string {
	return sortedKeys(i.freeVars)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
