package source

import _ "embed"

// sampleDeck is the bundled fallback deck, same format as the sheet export.
//
//go:embed data/questions.csv
var sampleDeck string
