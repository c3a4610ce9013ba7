package models

// Region represents the populated bounds of a sheet.
type Region struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
	// Range is the region in A1 notation (e.g. "A1:D10").
	Range string `json:"range"`
	// NonEmpty is the number of non-blank cells inside the bounds.
	NonEmpty int `json:"non_empty"`
	// Density is NonEmpty divided by the bounded cell count.
	Density float64 `json:"density"`
}
