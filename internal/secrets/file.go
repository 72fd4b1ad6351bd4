package secrets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
)

// FileProvider reads secrets from a local JSON vault file of the form
// {"<name>": {"<key>": "<value>", ...}, ...}. The file is read on every
// lookup so rotated credentials apply without a restart.
type FileProvider struct {
	path string
}

var _ interfaces.SecretProvider = (*FileProvider)(nil)

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) GetSecret(name string) (map[string]string, error) {
	b, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read vault file: %w", err)
	}

	var vault map[string]map[string]string
	if err := json.Unmarshal(b, &vault); err != nil {
		return nil, fmt.Errorf("decode vault file: %w", err)
	}

	secret, ok := vault[name]
	if !ok {
		return nil, fmt.Errorf("secret '%s' not found in vault", name)
	}
	return secret, nil
}
