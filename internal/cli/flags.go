package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	Target        string
	Provider      string
	ListLanguages bool

	// Chat-model provider flags
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Target:      "es",
		Provider:    "google",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}
