// Package config holds the toml-loadable settings for the txnsim harness
// and its admin server, following the toml-tagged Config struct and
// package-level DefaultConf pattern.
// The txn package itself takes no configuration: it is parameterized
// entirely by constructor arguments on each call.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/coredb/tinytxn/txn"
	"github.com/ngaut/log"
	"github.com/pingcap/errors"
)

type Config struct {
	// AdminAddr is the listen address for the read-only debug HTTP
	// server in internal/adminserver.
	AdminAddr string `toml:"admin-addr"`
	LogLevel  string `toml:"log-level"`

	// DefaultIsolation is the isolation level txnsim's demo scenarios
	// construct contexts with; txnsim has no command-line flag that
	// overrides it.
	DefaultIsolation IsolationName `toml:"default-isolation"`
}

// IsolationName lets a toml file spell out an isolation level by name
// instead of its numeric encoding.
type IsolationName string

const (
	IsolationReadUncommitted IsolationName = "read-uncommitted"
	IsolationReadCommitted   IsolationName = "read-committed"
	IsolationRepeatableRead  IsolationName = "repeatable-read"
	IsolationSerializable    IsolationName = "serializable"
)

// Level resolves the toml name to the txn package's IsolationLevel.
func (n IsolationName) Level() (txn.IsolationLevel, error) {
	switch n {
	case IsolationReadUncommitted:
		return txn.ReadUncommitted, nil
	case IsolationReadCommitted:
		return txn.ReadCommitted, nil
	case IsolationRepeatableRead:
		return txn.RepeatableRead, nil
	case IsolationSerializable, "":
		return txn.Serializable, nil
	default:
		return 0, errors.Errorf("config: unknown isolation level %q", string(n))
	}
}

func getLogLevel() string {
	if l := os.Getenv("LOG_LEVEL"); l != "" {
		return l
	}
	return "info"
}

// DefaultConf mirrors this repository's existing package-level
// DefaultConf convention.
var DefaultConf = Config{
	AdminAddr:        "127.0.0.1:9291",
	LogLevel:         getLogLevel(),
	DefaultIsolation: IsolationSerializable,
}

// Load reads a toml file at path over a copy of DefaultConf, mirroring
// kv/tinykv-server/main.go's loadConfig. An empty path returns the
// default unchanged.
func Load(path string) (*Config, error) {
	conf := DefaultConf
	if path != "" {
		if _, err := toml.DecodeFile(path, &conf); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return &conf, nil
}

// Validate follows kv/config.Config.Validate()'s shape: return an error
// for a configuration txnsim cannot run with at all, and warn (but
// proceed) for a setting that is legal but discouraged.
func (c *Config) Validate() error {
	if c.AdminAddr == "" {
		return errors.New("config: admin-addr must not be empty")
	}
	if _, err := c.DefaultIsolation.Level(); err != nil {
		return errors.Trace(err)
	}
	if c.DefaultIsolation == IsolationReadUncommitted {
		log.Warnf("config: default-isolation is %q, dirty reads will be visible across transactions", c.DefaultIsolation)
	}
	return nil
}
