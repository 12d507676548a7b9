package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sony/gobreaker"
)

// ErrClientUnavailable is returned for every request when the provider could
// not be constructed. The failure degrades individual translations instead of
// crashing the application.
var ErrClientUnavailable = errors.New("translation client could not be initialized, check your credentials")

// Service is the single entry point for translations. It short-circuits
// empty input, memoizes results by exact (text, target) pair and sends each
// remaining request through the provider exactly once, behind a circuit
// breaker. The provider itself is constructed lazily on first use and kept
// for the process lifetime.
type Service struct {
	config  *Config
	cache   *Cache
	breaker *gobreaker.CircuitBreaker

	once     sync.Once
	provider Provider
	initErr  error
}

// NewService creates a translation service. The provider is not constructed
// until the first request needs it.
func NewService(config *Config) *Service {
	return &Service{
		config: config,
		cache:  NewCache(),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "translate",
		}),
	}
}

// NewServiceWithProvider creates a service around an already constructed
// provider. Used by the tests and by callers that manage provider setup
// themselves.
func NewServiceWithProvider(provider Provider) *Service {
	s := NewService(nil)
	s.once.Do(func() {
		s.provider = provider
	})
	return s
}

// Provider returns the memoized provider, constructing it on first call.
// Two consecutive calls return the identical instance.
func (s *Service) Provider() (Provider, error) {
	s.once.Do(func() {
		s.provider, s.initErr = NewProvider(context.Background(), s.config)
	})
	if s.initErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientUnavailable, s.initErr)
	}
	return s.provider, nil
}

// Translate translates text into the target language. Empty input yields an
// empty result without contacting the provider. Identical repeated requests
// are served from the cache. Any provider failure degrades this one request
// to an empty result with an error; there are no retries.
func (s *Service) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	if translated, ok := s.cache.Get(text, target); ok {
		return translated, nil
	}

	provider, err := s.Provider()
	if err != nil {
		return "", err
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return provider.Translate(ctx, text, target)
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	translated := result.(string)
	s.cache.Add(text, target, translated)
	return translated, nil
}

// CacheSize reports how many distinct (text, target) pairs have been
// translated so far.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}
