package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	// EnvVar holds either a path to a .json key file or the raw key JSON.
	EnvVar = "GOOGLE_APPLICATION_TRANSLATE_CREDENTIALS_JSON"

	// SecretKey is the secret store entry consulted when EnvVar is absent.
	SecretKey = "GOOGLE_CREDS"
)

// ErrNoCredentials is returned when neither the environment variable nor the
// secret store provides a credential payload.
var ErrNoCredentials = errors.New("no Google credentials found: set " + EnvVar +
	" or add " + SecretKey + " to the secret store")

// SecretStore looks up raw secret values by key. The second return value
// reports whether the entry exists.
type SecretStore interface {
	Get(key string) (string, bool)
}

// Resolver resolves the service account key at most once per process.
// Credentials do not change at runtime, so the first result is kept for the
// process lifetime.
type Resolver struct {
	store SecretStore

	once sync.Once
	key  *Key
	err  error
}

// NewResolver creates a resolver backed by the given secret store.
func NewResolver(store SecretStore) *Resolver {
	return &Resolver{store: store}
}

// Key returns the resolved credential payload, resolving it on first use.
// Every subsequent call returns the same result.
func (r *Resolver) Key() (*Key, error) {
	r.once.Do(func() {
		r.key, r.err = Resolve(r.store)
	})
	return r.key, r.err
}

// Resolve locates and parses the credential payload. The environment
// variable takes priority; the secret store is consulted only when the
// variable is absent. A parse failure never falls through to the next
// source.
func Resolve(store SecretStore) (*Key, error) {
	if value, ok := os.LookupEnv(EnvVar); ok {
		return resolveEnvValue(value)
	}

	if store != nil {
		if raw, ok := store.Get(SecretKey); ok {
			key, err := parseKey([]byte(raw))
			if err != nil {
				return nil, fmt.Errorf("decoding secret store entry %s: %w", SecretKey, err)
			}
			return key, nil
		}
	}

	return nil, ErrNoCredentials
}

// resolveEnvValue treats a value ending in .json as a key file path and
// anything else as raw JSON.
func resolveEnvValue(value string) (*Key, error) {
	if strings.HasSuffix(value, ".json") {
		data, err := os.ReadFile(value)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("credentials file set in %s does not exist: %s", EnvVar, value)
		}
		if err != nil {
			return nil, fmt.Errorf("reading credentials file %s: %w", value, err)
		}
		key, err := parseKey(data)
		if err != nil {
			return nil, fmt.Errorf("decoding credentials file %s: %w", value, err)
		}
		return key, nil
	}

	key, err := parseKey([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("decoding JSON value of %s: %w", EnvVar, err)
	}
	return key, nil
}
