package config

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/credentials"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"google.golang.org/api/option"

	"github.com/journalai/api/secretmanager"
)

const (
	// secretsFileEnv points the service at a local secrets.toml for development.
	secretsFileEnv = "SECRETS_FILE"

	defaultLocation    = "us-central1"
	defaultVertexModel = "gemini-1.5-flash"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

var (
	ErrInvalidConfig             = errors.New("invalid service configuration")
	ErrInvalidServiceAccountJSON = errors.New("service_account_json is not a valid service account key")
)

// GCP holds the gcp table of the secrets document. The service account key
// must carry a datastore read/write role and a model inference usage role.
type GCP struct {
	ProjectID          string `toml:"project_id" validate:"required"`
	Location           string `toml:"location"`
	VertexModel        string `toml:"vertex_model"`
	ServiceAccountJSON string `toml:"service_account_json" validate:"required"`
}

type Config struct {
	GCP GCP `toml:"gcp"`
}

// Load reads the service configuration from the local secrets file when
// SECRETS_FILE is set, otherwise from the latest Secret Manager version.
func Load(ctx context.Context) (*Config, error) {
	data, err := read(ctx)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes and validates a TOML secrets document.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func read(ctx context.Context) ([]byte, error) {
	if path := os.Getenv(secretsFileEnv); path != "" {
		return os.ReadFile(path)
	}

	return secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretJournalAPI)
}

func (c *Config) applyDefaults() {
	if c.GCP.Location == "" {
		c.GCP.Location = defaultLocation
	}

	if c.GCP.VertexModel == "" {
		c.GCP.VertexModel = defaultVertexModel
	}
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	var key struct {
		Type        string `json:"type"`
		ClientEmail string `json:"client_email"`
	}

	if err := json.Unmarshal([]byte(c.GCP.ServiceAccountJSON), &key); err != nil {
		return ErrInvalidServiceAccountJSON
	}

	if key.ClientEmail == "" {
		return ErrInvalidServiceAccountJSON
	}

	return nil
}

// ClientOptions returns the GCP SDK client options authorizing with the
// configured service account key.
func (c *Config) ClientOptions() []option.ClientOption {
	return []option.ClientOption{
		option.WithCredentialsJSON([]byte(c.GCP.ServiceAccountJSON)),
	}
}

// Credentials builds the credentials used by the Vertex AI client.
func (c *Config) Credentials() (*auth.Credentials, error) {
	return credentials.DetectDefault(&credentials.DetectOptions{
		CredentialsJSON: []byte(c.GCP.ServiceAccountJSON),
		Scopes:          []string{cloudPlatformScope},
	})
}
