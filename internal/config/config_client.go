package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the go-uaa REST API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientAuth holds the credentials the client authenticates with. A token
// takes precedence over login/password.
type ClientAuth struct {
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
	Token    string `env:"TOKEN"`
}

// ClientConfig is the configuration of the composite solution dialog client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	Auth    ClientAuth    `envPrefix:"CLIENT_"`

	// SolutionUUID selects the solution the dialog edits.
	// Env: CLIENT_SOLUTION_UUID
	SolutionUUID string `env:"CLIENT_SOLUTION_UUID"`

	// LogLevel is a zerolog level name.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the process flags.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter:  ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		LogLevel: "info",
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	for _, layer := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Join(errors.New("error validating client config"), err)
	}

	return cfg, nil
}

// parseClientFlags parses the client flags from args.
//
// Flags:
//
//	-a server base URL
//	-request-timeout request timeout
//	-login / -password credentials
//	-token bearer token (skips authentication)
//	-uuid solution uuid to edit
//	-log-level log level
func parseClientFlags(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("go-uaa-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout")
	fs.StringVar(&cfg.Auth.Login, "login", "", "Login")
	fs.StringVar(&cfg.Auth.Password, "password", "", "Password")
	fs.StringVar(&cfg.Auth.Token, "token", "", "Bearer token")
	fs.StringVar(&cfg.SolutionUUID, "uuid", "", "Solution uuid")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
