package shared

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSlippageBps    = 300
	DefaultTokenDecimals  = 9
	DefaultDomainSpaceKB  = 1
	DefaultServiceTimeout = 30 * time.Second
)

// Config is the on-disk kit configuration. Operator credentials may be left
// empty in the file and supplied through the environment instead.
type Config struct {
	Network  string         `yaml:"network"`
	Operator OperatorConfig `yaml:"operator"`
	Mirror   ServiceConfig  `yaml:"mirror"`
	Services ServicesConfig `yaml:"services"`
	Log      LogConfig      `yaml:"log"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type ServicesConfig struct {
	Swap      ServiceConfig `yaml:"swap"`
	Faucet    ServiceConfig `yaml:"faucet"`
	Names     ServiceConfig `yaml:"names"`
	Launchpad ServiceConfig `yaml:"launchpad"`
}

// ServiceConfig locates one HTTP service. An empty BaseURL leaves the mirror
// on its network default and every other service unconfigured.
type ServiceConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
	// EventsURL is a socket.io endpoint for services that push status events.
	EventsURL string `yaml:"events_url"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultsConfig holds values used when a tool argument is omitted. A nil
// TokenDecimals means DefaultTokenDecimals; an explicit 0 is kept.
type DefaultsConfig struct {
	SlippageBps   int   `yaml:"slippage_bps"`
	TokenDecimals *uint `yaml:"token_decimals"`
	DomainSpaceKB int   `yaml:"domain_space_kb"`
}

// Decimals returns the configured token decimals or DefaultTokenDecimals.
func (d DefaultsConfig) Decimals() uint {
	if d.TokenDecimals == nil {
		return DefaultTokenDecimals
	}
	return *d.TokenDecimals
}

// DefaultConfig returns a testnet configuration with no operator.
func DefaultConfig() Config {
	return Config{
		Network: NetworkTestnet,
		Log:     LogConfig{Level: "disabled"},
		Defaults: DefaultsConfig{
			SlippageBps:   DefaultSlippageBps,
			DomainSpaceKB: DefaultDomainSpaceKB,
		},
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig and fills
// missing operator fields from the environment. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if config.Operator.AccountID == "" || config.Operator.PrivateKey == "" {
		if fromEnv, err := OperatorConfigFromEnv(); err == nil {
			if config.Operator.AccountID == "" {
				config.Operator.AccountID = fromEnv.AccountID
			}
			if config.Operator.PrivateKey == "" {
				config.Operator.PrivateKey = fromEnv.PrivateKey
			}
			if strings.TrimSpace(path) == "" && fromEnv.Network != "" {
				config.Network = fromEnv.Network
			}
		}
	}

	return config.normalize()
}

func (c Config) normalize() (Config, error) {
	network := c.Network
	if network == "" {
		network = c.Operator.Network
	}
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return Config{}, err
	}
	c.Network = normalized
	c.Operator.Network = normalized

	if c.Defaults.SlippageBps <= 0 {
		c.Defaults.SlippageBps = DefaultSlippageBps
	}
	if c.Defaults.DomainSpaceKB <= 0 {
		c.Defaults.DomainSpaceKB = DefaultDomainSpaceKB
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = "disabled"
	}

	return c, nil
}
