package render

// PassState is the position of the orchestrator within a frame.
type PassState int

const (
	PassIdle PassState = iota
	PassRefraction
	PassReflection
	PassMain
)

// String returns the pass name.
func (s PassState) String() string {
	switch s {
	case PassIdle:
		return "idle"
	case PassRefraction:
		return "refraction"
	case PassReflection:
		return "reflection"
	case PassMain:
		return "main"
	}
	return "unknown"
}

// next returns the only state allowed to follow s.
func (s PassState) next() PassState {
	switch s {
	case PassIdle:
		return PassRefraction
	case PassRefraction:
		return PassReflection
	case PassReflection:
		return PassMain
	default:
		return PassIdle
	}
}

// Variant selects the terrain shader program.
type Variant int

const (
	// VariantLit is the lit terrain of the main pass.
	VariantLit Variant = iota
	// VariantRefraction clips terrain above the water.
	VariantRefraction
	// VariantReflection clips terrain below the water.
	VariantReflection
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantLit:
		return "lit"
	case VariantRefraction:
		return "refraction"
	case VariantReflection:
		return "reflection"
	}
	return "unknown"
}

// Clipped reports whether the variant binds a clip plane.
func (v Variant) Clipped() bool {
	return v == VariantRefraction || v == VariantReflection
}
