package translation

import "testing"

func TestLanguages_Catalog(t *testing.T) {
	if len(Languages) != 11 {
		t.Fatalf("catalog has %d entries, want 11", len(Languages))
	}

	// The dropdown order is fixed
	expected := []Language{
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

	for i, want := range expected {
		if Languages[i] != want {
			t.Errorf("Languages[%d] = %v, want %v", i, Languages[i], want)
		}
	}
}

func TestLanguageNames(t *testing.T) {
	names := LanguageNames()

	if len(names) != len(Languages) {
		t.Fatalf("got %d names, want %d", len(names), len(Languages))
	}
	if names[0] != "Spanish" {
		t.Errorf("first name = %q, want %q", names[0], "Spanish")
	}
	if names[len(names)-1] != "Arabic" {
		t.Errorf("last name = %q, want %q", names[len(names)-1], "Arabic")
	}
}

func TestCodeForName(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"Spanish", "es", true},
		{"Chinese (Simplified)", "zh-CN", true},
		{"Arabic", "ar", true},
		{"Klingon", "", false},
		{"spanish", "", false}, // display names are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CodeForName(tt.name)
			if ok != tt.ok || code != tt.code {
				t.Errorf("CodeForName(%q) = (%q, %v), want (%q, %v)",
					tt.name, code, ok, tt.code, tt.ok)
			}
		})
	}
}

func TestNameForCode(t *testing.T) {
	name, ok := NameForCode("vi")
	if !ok || name != "Vietnamese" {
		t.Errorf("NameForCode(\"vi\") = (%q, %v), want (\"Vietnamese\", true)", name, ok)
	}

	if _, ok := NameForCode("xx"); ok {
		t.Error("NameForCode(\"xx\") should not resolve")
	}
}
