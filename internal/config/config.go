// Package config handles configuration loading for programs embedding the
// client library.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so credentials can be injected
// at runtime instead of living in the file:
//
//	http:
//	  timeout: 30s
//
//	endpoints:
//	  production:
//	    host: bc.example.com
//	    port: 7048
//	    instance: BC210
//	    company: "CRONUS International Ltd."
//	    protocol: odata
//	    tls: true
//	    auth:
//	      kind: basic
//	      username: svc-integration
//	      password: ${BC_PASSWORD}
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ternsoft/go-dynamics/pkg/endpoint"
	"github.com/ternsoft/go-dynamics/pkg/transport"
)

// Config is the root configuration structure.
type Config struct {
	HTTP      HTTPConfig                `yaml:"http"`
	Endpoints map[string]EndpointConfig `yaml:"endpoints" validate:"required,min=1,dive"`
}

// Duration decodes YAML values like "30s" or "2m" into a time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// HTTPConfig holds transport settings shared by all endpoints.
type HTTPConfig struct {
	Timeout         Duration `yaml:"timeout"`
	IdleConnTimeout Duration `yaml:"idleConnTimeout"`
	UserAgent       string   `yaml:"userAgent"`
}

// EndpointConfig holds the settings of one named endpoint.
type EndpointConfig struct {
	Host       string     `yaml:"host" validate:"required"`
	Port       int        `yaml:"port" validate:"required,min=1,max=65535"`
	Instance   string     `yaml:"instance" validate:"required"`
	Company    string     `yaml:"company" validate:"required"`
	Protocol   string     `yaml:"protocol" validate:"required,oneof=odata soap"`
	ObjectType string     `yaml:"objectType" validate:"omitempty,oneof=page codeunit"`
	TLS        bool       `yaml:"tls"`
	Auth       AuthConfig `yaml:"auth"`
}

// AuthConfig holds the credential settings of one endpoint.
type AuthConfig struct {
	Kind     string `yaml:"kind" validate:"omitempty,oneof=basic bearer ambient"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Token    string `yaml:"token"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = Duration(30 * time.Second)
	}
	if c.HTTP.IdleConnTimeout == 0 {
		c.HTTP.IdleConnTimeout = Duration(90 * time.Second)
	}
}

// TransportConfig converts the HTTP section into a transport configuration.
func (c *Config) TransportConfig() *transport.Config {
	tc := transport.DefaultConfig()
	tc.Timeout = time.Duration(c.HTTP.Timeout)
	tc.IdleConnTimeout = time.Duration(c.HTTP.IdleConnTimeout)
	if c.HTTP.UserAgent != "" {
		tc.UserAgent = c.HTTP.UserAgent
	}
	return tc
}

// Endpoint converts a named endpoint section into an endpoint descriptor.
func (c *Config) Endpoint(name string) (*endpoint.Endpoint, error) {
	ec, ok := c.Endpoints[name]
	if !ok {
		return nil, fmt.Errorf("endpoint %q is not configured", name)
	}

	protocol := endpoint.ODataV4
	if ec.Protocol == "soap" {
		protocol = endpoint.SOAP
	}

	var objectType endpoint.ObjectType
	switch ec.ObjectType {
	case "page":
		objectType = endpoint.Page
	case "codeunit":
		objectType = endpoint.Codeunit
	}

	var kind endpoint.AuthKind
	switch ec.Auth.Kind {
	case "basic":
		kind = endpoint.AuthBasic
	case "bearer":
		kind = endpoint.AuthBearer
	case "ambient", "":
		kind = endpoint.AuthAmbient
	}

	ep := &endpoint.Endpoint{
		Host:       ec.Host,
		Port:       ec.Port,
		Instance:   ec.Instance,
		Company:    ec.Company,
		Protocol:   protocol,
		ObjectType: objectType,
		UseTLS:     ec.TLS,
		Credentials: endpoint.Credentials{
			Kind:     kind,
			Username: ec.Auth.Username,
			Password: ec.Auth.Password,
			Token:    ec.Auth.Token,
		},
	}
	if err := ep.Validate(); err != nil {
		return nil, fmt.Errorf("endpoint %q: %w", name, err)
	}
	return ep, nil
}
