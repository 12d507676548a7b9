package credentials

import (
	"encoding/json"
	"fmt"
)

// ServiceAccountKey mirrors the JSON layout of a Google Cloud service
// account key file.
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain,omitempty"`
}

// Key is a resolved credential payload. Raw holds the original JSON so it
// can be handed to the translation client unchanged.
type Key struct {
	ServiceAccountKey
	Raw []byte
}

func parseKey(data []byte) (*Key, error) {
	var sak ServiceAccountKey
	if err := json.Unmarshal(data, &sak); err != nil {
		return nil, err
	}
	if sak.Type != "" && sak.Type != "service_account" {
		return nil, fmt.Errorf("unexpected credential type %q, want \"service_account\"", sak.Type)
	}
	return &Key{ServiceAccountKey: sak, Raw: data}, nil
}
