package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driving"
)

// Ensure CredentialsService implements the interface.
var _ driving.CredentialsService = (*CredentialsService)(nil)

// envVars maps provider tokens to the environment variables consulted
// before the config store.
var envVars = map[string]string{
	domain.ProviderNotion: "NOTION_API_KEY",
	domain.ProviderLinear: "LINEAR_API_KEY",
}

// CredentialsService resolves static provider credentials from the
// environment first and the config store second. It carries no refresh
// or OAuth-flow logic; credentials are opaque strings handed to adapters.
type CredentialsService struct {
	configStore driven.ConfigStore
}

// NewCredentialsService creates a credentials service backed by a config
// store. The store may be nil, in which case only the environment is
// consulted.
func NewCredentialsService(configStore driven.ConfigStore) *CredentialsService {
	return &CredentialsService{configStore: configStore}
}

// configKey is the config store key for a provider credential.
func configKey(provider string) string {
	return fmt.Sprintf("providers.%s.api_key", provider)
}

// APIKey resolves the credential for a provider, "" when unset.
func (s *CredentialsService) APIKey(provider string) string {
	provider = strings.ToLower(provider)
	if env, ok := envVars[provider]; ok {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	if s.configStore == nil {
		return ""
	}
	return s.configStore.GetString(configKey(provider))
}

// SetAPIKey persists a credential in the config store.
func (s *CredentialsService) SetAPIKey(provider, key string) error {
	provider = strings.ToLower(provider)
	if _, known := envVars[provider]; !known {
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidQuery, provider)
	}
	if s.configStore == nil {
		return fmt.Errorf("%w: no config store available", domain.ErrProvider)
	}
	return s.configStore.Set(configKey(provider), key)
}

// Status reports credential state for every known provider, sorted by
// provider token.
func (s *CredentialsService) Status() []driving.CredentialStatus {
	statuses := make([]driving.CredentialStatus, 0, len(envVars))
	for _, provider := range []string{domain.ProviderLinear, domain.ProviderNotion} {
		env := envVars[provider]
		fromEnv := os.Getenv(env) != ""
		statuses = append(statuses, driving.CredentialStatus{
			Provider:   provider,
			EnvVar:     env,
			Configured: s.APIKey(provider) != "",
			FromEnv:    fromEnv,
		})
	}
	return statuses
}
