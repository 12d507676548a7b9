// Package credentials resolves the Google Cloud service account key used to
// authenticate translation requests. The key is looked up in the
// GOOGLE_APPLICATION_TRANSLATE_CREDENTIALS_JSON environment variable, whose
// value may be either a path to a .json key file or the raw JSON itself, and
// falls back to the GOOGLE_CREDS entry of the local secret store when the
// environment variable is absent.
package credentials
