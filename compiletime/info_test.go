package compiletime

import (
	"encoding/json"
	"testing"
)

func TestEdgeInfo(t *testing.T) {
	info := EdgeInfo("production", map[string]string{"process.env.FOO": `"bar"`})

	if info.Environment().Runtime != RuntimeEdge {
		t.Errorf("Runtime = %v, want edge", info.Environment().Runtime)
	}
	tests := map[string]string{
		"process.env.NEXT_RUNTIME": `"edge"`,
		"process.env.NODE_ENV":     `"production"`,
		"process.env.FOO":          `"bar"`,
	}
	for name, want := range tests {
		got, ok := info.Define(name)
		if !ok || got != want {
			t.Errorf("Define(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}
	if _, ok := info.FreeVar("process"); ok {
		t.Error("edge info should have no free vars")
	}
}

func TestEdgeInfo_DefaultNodeEnv(t *testing.T) {
	info := EdgeInfo("", nil)
	if got, _ := info.Define("process.env.NODE_ENV"); got != `"development"` {
		t.Errorf("NODE_ENV = %s", got)
	}
}

func TestEdgeInfo_NodeEnvQuoted(t *testing.T) {
	for _, env := range []string{`prod"uction`, `back\slash`, "line\nbreak"} {
		got, _ := EdgeInfo(env, nil).Define("process.env.NODE_ENV")
		var decoded string
		if err := json.Unmarshal([]byte(got), &decoded); err != nil {
			t.Fatalf("NODE_ENV %q: define %s is not a literal: %v", env, got, err)
		}
		if decoded != env {
			t.Errorf("NODE_ENV decodes to %q, want %q", decoded, env)
		}
	}
}

func TestNew_CopiesMaps(t *testing.T) {
	defines := map[string]string{"b": "1", "a": "2"}
	info := New(Environment{Runtime: RuntimeNodeJS}, defines, nil)
	defines["c"] = "3"

	names := info.DefineNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("DefineNames = %v", names)
	}
	if len(info.FreeVarNames()) != 0 {
		t.Errorf("FreeVarNames = %v", info.FreeVarNames())
	}
}
