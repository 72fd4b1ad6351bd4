package secrets

import (
	"fmt"
	"os"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
)

// EnvProvider resolves named secrets from environment variables, typically
// loaded from .env via godotenv at startup. Secret names follow the vault
// naming the deployment has always used; the binding below maps each vault
// entry to its environment variable.
type EnvProvider struct {
	bindings map[string]map[string]string
}

var _ interfaces.SecretProvider = (*EnvProvider)(nil)

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{
		bindings: map[string]map[string]string{
			"Api_Key":  {"apiKey": "NEWS_API_KEY"},
			"GMAIL_pw": {"GMAIL_PASSWORD": "GMAIL_PASSWORD"},
			"Resend":   {"apiKey": "RESEND_API_KEY"},
		},
	}
}

func (p *EnvProvider) GetSecret(name string) (map[string]string, error) {
	binding, ok := p.bindings[name]
	if !ok {
		return nil, fmt.Errorf("unknown secret '%s'", name)
	}

	out := make(map[string]string, len(binding))
	for key, envVar := range binding {
		v := os.Getenv(envVar)
		if v == "" {
			return nil, fmt.Errorf("secret '%s': environment variable %s is not set", name, envVar)
		}
		out[key] = v
	}
	return out, nil
}
