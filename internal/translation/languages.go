package translation

// Language pairs a human-readable language name with its translation API code.
type Language struct {
	Name string
	Code string
}

// Languages is the fixed catalog of selectable target languages, in the
// order they appear in the UI dropdown.
var Languages = []Language{
	{"Spanish", "es"},
	{"French", "fr"},
	{"German", "de"},
	{"Chinese (Simplified)", "zh-CN"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
	{"Vietnamese", "vi"},
	{"Tagalog", "tl"},
	{"Russian", "ru"},
	{"Hindi", "hi"},
	{"Arabic", "ar"},
}

// LanguageNames returns the display names of the catalog in order.
func LanguageNames() []string {
	names := make([]string, len(Languages))
	for i, lang := range Languages {
		names[i] = lang.Name
	}
	return names
}

// CodeForName returns the language code for a display name.
func CodeForName(name string) (string, bool) {
	for _, lang := range Languages {
		if lang.Name == name {
			return lang.Code, true
		}
	}
	return "", false
}

// NameForCode returns the display name for a language code.
func NameForCode(code string) (string, bool) {
	for _, lang := range Languages {
		if lang.Code == code {
			return lang.Name, true
		}
	}
	return "", false
}
