package credentials

import (
	"os"

	"github.com/spf13/viper"
)

// ViperStore is a SecretStore backed by a local secrets file, read with its
// own viper instance so secret material never mixes into the main
// configuration. The file is searched as .schooltrans-secrets.yaml in the
// home directory and then the working directory.
type ViperStore struct {
	v *viper.Viper
}

// NewViperStore creates the secret store. A missing secrets file is not an
// error, it just means the store has no entries.
func NewViperStore() *ViperStore {
	v := viper.New()
	v.SetConfigName(".schooltrans-secrets")
	v.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	_ = v.ReadInConfig()

	return &ViperStore{v: v}
}

// Get returns the raw string value of the given secret entry.
func (s *ViperStore) Get(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}
