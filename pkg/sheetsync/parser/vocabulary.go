package parser

// Vocabulary holds the keyword sets used to recognise sheets and columns.
// Keywords are matched case-insensitively against normalized headers.
type Vocabulary struct {
	// ID lists identifier-like header keywords.
	ID []string
	// AttrA lists polygon-like header keywords.
	AttrA []string
	// AttrB lists cell-like header keywords.
	AttrB []string
	// GenericSheetWords marks placeholder sheet names such as "Sheet1".
	GenericSheetWords []string
	// ProbeRows is how many rows after the header are checked for data.
	ProbeRows int
}

// DefaultVocabulary returns the built-in keyword sets.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		ID:                []string{"id", "code", "identifier", "key", "site"},
		AttrA:             []string{"polygon", "poly", "polígono", "area"},
		AttrB:             []string{"cell", "celda", "sector"},
		GenericSheetWords: []string{"sheet", "hoja", "feuil", "tabelle"},
		ProbeRows:         5,
	}
}

// WithDefaults fills empty keyword sets from DefaultVocabulary.
func (v Vocabulary) WithDefaults() Vocabulary {
	d := DefaultVocabulary()
	if len(v.ID) == 0 {
		v.ID = d.ID
	}
	if len(v.AttrA) == 0 {
		v.AttrA = d.AttrA
	}
	if len(v.AttrB) == 0 {
		v.AttrB = d.AttrB
	}
	if len(v.GenericSheetWords) == 0 {
		v.GenericSheetWords = d.GenericSheetWords
	}
	if v.ProbeRows <= 0 {
		v.ProbeRows = d.ProbeRows
	}
	return v
}
