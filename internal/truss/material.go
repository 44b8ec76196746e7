package truss

// Material holds the strength properties shared by every member of a truss.
// All fields are zero until the corresponding records are parsed: a
// material record replaces the first three wholesale and a static_factor
// record fills the last.
type Material struct {
	UTS          float64 // ultimate tensile strength
	YS           float64 // yield strength
	E            float64 // modulus of elasticity
	StaticFactor float64 // static factor of safety
}
