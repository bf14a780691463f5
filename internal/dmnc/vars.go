package dmnc

var (
	Debug = false // set to true for verbose debug output

	// Compile time check to ensure the reference model implements the injected calculator interface
	_ RateCalculator = (*HydrogenLike)(nil)
)
