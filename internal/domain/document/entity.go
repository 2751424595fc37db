package document

import "time"

// Dokumenttyp enum, matching the dokumenttyp column.
type Dokumenttyp string

const (
	DokumenttypFuehrerschein      Dokumenttyp = "fuehrerschein"
	DokumenttypReisepass          Dokumenttyp = "reisepass"
	DokumenttypSRC                Dokumenttyp = "src"
	DokumenttypPersonalausweis    Dokumenttyp = "personalausweis"
	DokumenttypGesundheitszeugnis Dokumenttyp = "gesundheitszeugnis"
	DokumenttypSonstiges          Dokumenttyp = "sonstiges"
)

var Dokumenttypen = []string{
	string(DokumenttypFuehrerschein),
	string(DokumenttypReisepass),
	string(DokumenttypSRC),
	string(DokumenttypPersonalausweis),
	string(DokumenttypGesundheitszeugnis),
	string(DokumenttypSonstiges),
}

var typLabels = map[Dokumenttyp]string{
	DokumenttypFuehrerschein:      "Führerschein",
	DokumenttypReisepass:          "Reisepass",
	DokumenttypSRC:                "SRC-Karte",
	DokumenttypPersonalausweis:    "Personalausweis",
	DokumenttypGesundheitszeugnis: "Gesundheitszeugnis",
	DokumenttypSonstiges:          "Sonstiges",
}

// Label returns the display name of the type; unknown types fall back to the
// raw value.
func (t Dokumenttyp) Label() string {
	if label, ok := typLabels[t]; ok {
		return label
	}
	return string(t)
}

// Document entity, persisted in the dokumente table. The file payload is
// stored inline as a data URL (DateiInhalt) with its content type; documents
// are never edited in place, replacement is delete-then-recreate.
type Document struct {
	ID            string
	MitarbeiterID string
	Dokumenttyp   Dokumenttyp
	Dokumentname  string
	// Ablaufdatum is optional; nil means the document never expires.
	Ablaufdatum *time.Time
	Notizen     *string
	DateiInhalt *string
	DateiTyp    *string
	// HatDatei mirrors datei_inhalt IS NOT NULL; list queries omit the
	// payload itself.
	HatDatei   bool
	ErstelltAm time.Time

	// Joined for responses
	MitarbeiterName *string
}
