package driving

// CredentialStatus reports whether a provider has a usable credential
// and where it came from.
type CredentialStatus struct {
	// Provider is the provider identity token.
	Provider string

	// EnvVar is the environment variable consulted first.
	EnvVar string

	// Configured is true when a non-empty credential was resolved.
	Configured bool

	// FromEnv is true when the credential came from the environment
	// rather than the config store.
	FromEnv bool
}

// CredentialsService resolves static provider credentials.
type CredentialsService interface {
	// APIKey returns the credential for a provider, "" when unset.
	// Resolution order: environment variable, then config store.
	APIKey(provider string) string

	// SetAPIKey persists a credential in the config store. The
	// environment variable, when set, still wins at load time.
	SetAPIKey(provider, key string) error

	// Status reports credential state for every known provider.
	Status() []CredentialStatus
}
