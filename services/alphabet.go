package services

// AlphabetRows holds the fixed letter rows the listing filter UI offers.
// They are static data, not derived from stored titles.
type AlphabetRows struct {
	Cyrillic []string `json:"cyrillic"`
	Latin    []string `json:"latin"`
	Digits   []string `json:"digits"`
}

// LetterRows returns the Cyrillic, Latin and digit filter rows. Ё is not
// contiguous with the rest of the Cyrillic block in Unicode, so it gets
// spliced in after Е.
func LetterRows() AlphabetRows {
	cyrillic := make([]string, 0, 33)
	for r := 'А'; r <= 'Я'; r++ {
		cyrillic = append(cyrillic, string(r))
		if r == 'Е' {
			cyrillic = append(cyrillic, "Ё")
		}
	}

	latin := make([]string, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		latin = append(latin, string(r))
	}

	digits := make([]string, 0, 10)
	for r := '0'; r <= '9'; r++ {
		digits = append(digits, string(r))
	}

	return AlphabetRows{Cyrillic: cyrillic, Latin: latin, Digits: digits}
}
