package theme

// NewCatppuccinMocha creates the default Catppuccin Mocha theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		// Semantic colors
		Primary:   "#cba6f7", // Mauve
		Secondary: "#b4befe", // Lavender

		// Background hierarchy
		BgBase:     "#1e1e2e", // Base background
		BgMantle:   "#181825",
		BgSurface0: "#313244",
		BgSurface2: "#585b70",

		// Foreground hierarchy
		FgMuted:  "#6c7086",
		FgSubtle: "#a6adc8",
		FgBase:   "#cdd6f4", // Main text color

		// Borders
		BorderDefault: "#585b70",
		BorderFocused: "#b4befe",

		// Status colors
		Success: "#a6e3a1", // Green
		Warning: "#f9e2af", // Yellow
		Error:   "#f38ba8", // Red
		Info:    "#89b4fa", // Blue
	}
}
