package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvProviderResolvesBoundVariables(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "test-key-123")

	secret, err := NewEnvProvider().GetSecret("Api_Key")
	if err != nil {
		t.Fatalf("GetSecret failed: %v", err)
	}
	if secret["apiKey"] != "test-key-123" {
		t.Errorf("Unexpected secret value: %q", secret["apiKey"])
	}
}

func TestEnvProviderMissingVariable(t *testing.T) {
	t.Setenv("GMAIL_PASSWORD", "")

	if _, err := NewEnvProvider().GetSecret("GMAIL_pw"); err == nil {
		t.Fatal("Expected an error when the environment variable is unset")
	}
}

func TestEnvProviderUnknownName(t *testing.T) {
	if _, err := NewEnvProvider().GetSecret("Nonexistent"); err == nil {
		t.Fatal("Expected an error for an unknown secret name")
	}
}

func TestFileProviderLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	vault := `{"Api_Key": {"apiKey": "from-vault"}, "GMAIL_pw": {"GMAIL_PASSWORD": "hunter2"}}`
	if err := os.WriteFile(path, []byte(vault), 0o600); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	p := NewFileProvider(path)
	secret, err := p.GetSecret("Api_Key")
	if err != nil {
		t.Fatalf("GetSecret failed: %v", err)
	}
	if secret["apiKey"] != "from-vault" {
		t.Errorf("Unexpected secret value: %q", secret["apiKey"])
	}

	if _, err := p.GetSecret("Resend"); err == nil {
		t.Error("Expected an error for a name missing from the vault")
	}
}

func TestFileProviderMissingVault(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := p.GetSecret("Api_Key"); err == nil {
		t.Fatal("Expected an error for a missing vault file")
	}
}

func TestFileProviderRereadsOnRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	if err := os.WriteFile(path, []byte(`{"Api_Key": {"apiKey": "old"}}`), 0o600); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	p := NewFileProvider(path)

	if secret, _ := p.GetSecret("Api_Key"); secret["apiKey"] != "old" {
		t.Fatalf("Unexpected initial value: %q", secret["apiKey"])
	}

	if err := os.WriteFile(path, []byte(`{"Api_Key": {"apiKey": "rotated"}}`), 0o600); err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	secret, err := p.GetSecret("Api_Key")
	if err != nil {
		t.Fatalf("GetSecret after rotation failed: %v", err)
	}
	if secret["apiKey"] != "rotated" {
		t.Errorf("Expected the rotated value, got %q", secret["apiKey"])
	}
}
