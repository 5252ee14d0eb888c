package moduleopts

// OptionsContext toggles the source transforms applied to a module.
type OptionsContext struct {
	// PreserveComments keeps comments in emitted code.
	PreserveComments bool
	EnableJSX        bool
	EnableTypeScript bool
	EnableStyledJSX  bool
	EnableMDX        bool
}

// Default returns options for a TypeScript/JSX application.
func Default() *OptionsContext {
	return &OptionsContext{
		EnableJSX:        true,
		EnableTypeScript: true,
	}
}
