package parser

type Intent struct {
	Raw        string
	Normalised string
	Verb       string
	// Slot is the 1-based action slot for the "slot" verb, 0 otherwise.
	Slot       int
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext lists the verbs the player can use right now. Offered verbs
// win close calls.
type ParseContext struct {
	Offered []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	Help      string
}
