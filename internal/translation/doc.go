// Package translation wraps remote translation providers behind a single
// facade with per-input result caching. The default provider is the Google
// Cloud Translation API; OpenAI chat models and Gemini are available as
// alternative backends.
package translation
