package interfaces

// SecretProvider resolves a named secret to its key-value entries. A missing
// secret returns an error; credentials are never hard-coded.
type SecretProvider interface {
	GetSecret(name string) (map[string]string, error)
}
