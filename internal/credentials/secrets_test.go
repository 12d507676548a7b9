package credentials

import (
	"os"
	"testing"
)

func TestViperStore_ReadsSecretsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	secrets := "GOOGLE_CREDS: '{\"type\": \"service_account\", \"project_id\": \"hage-pta\"}'\n"
	if err := os.WriteFile(".schooltrans-secrets.yaml", []byte(secrets), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewViperStore()

	raw, ok := store.Get(SecretKey)
	if !ok {
		t.Fatal("expected GOOGLE_CREDS entry")
	}

	key, err := parseKey([]byte(raw))
	if err != nil {
		t.Fatalf("stored secret should parse: %v", err)
	}
	if key.ProjectID != "hage-pta" {
		t.Errorf("ProjectID = %q, want %q", key.ProjectID, "hage-pta")
	}
}

func TestViperStore_MissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	store := NewViperStore()

	if _, ok := store.Get(SecretKey); ok {
		t.Error("store without a secrets file should have no entries")
	}
}
