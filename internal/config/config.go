package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configType   = "toml"
	envPrefix    = "FINGER"
	userDir      = ".finger"
	systemDir    = "/etc/finger"
	defaultLevel = "warn"
)

const (
	DirectorySourceKey    = "directory.source"
	DirectoryPasswdKey    = "directory.passwd_path"
	SessionsVarRootKey    = "sessions.var_root"
	ProbeDevRootKey       = "probe.dev_root"
	ProbeMailRootKey      = "probe.mail_root"
	LimitsMaxUsersKey     = "limits.max_users"
	LimitsMaxQueryKey     = "limits.max_query_length"
	LimitsFileBytesKey    = "limits.personal_file_bytes"
	LogLevelKey           = "log.level"
	defaultMaxUsers       = 100
	defaultMaxQueryLength = 31
	defaultFileBytes      = 1023
)

type Source string

const (
	SourceAuto   Source = "auto"
	SourceFile   Source = "file"
	SourceGetent Source = "getent"
)

type Config struct {
	Directory Directory
	Sessions  Sessions
	Probe     Probe
	Limits    Limits
	LogLevel  logrus.Level
	// File is the config file that was read, empty when none was found.
	File string
}

type Directory struct {
	Source     Source
	PasswdPath string
}

type Sessions struct {
	VarRoot string
}

type Probe struct {
	DevRoot  string
	MailRoot string
}

type Limits struct {
	MaxUsers          int
	MaxQueryLength    int
	PersonalFileBytes int64
}

// Load reads the TOML config file and FINGER_* overrides. explicitPath, when
// set, must exist; otherwise a missing file leaves the defaults in place.
func Load(cfg *viper.Viper, explicitPath string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetDefault(DirectorySourceKey, string(SourceAuto))
	cfg.SetDefault(DirectoryPasswdKey, "/etc/passwd")
	cfg.SetDefault(SessionsVarRootKey, "")
	cfg.SetDefault(ProbeDevRootKey, "/dev")
	cfg.SetDefault(ProbeMailRootKey, "/var/mail")
	cfg.SetDefault(LimitsMaxUsersKey, defaultMaxUsers)
	cfg.SetDefault(LimitsMaxQueryKey, defaultMaxQueryLength)
	cfg.SetDefault(LimitsFileBytesKey, defaultFileBytes)
	cfg.SetDefault(LogLevelKey, defaultLevel)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if explicitPath != "" {
		cfg.SetConfigFile(explicitPath)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.AddConfigPath(filepath.Join(homeDir, userDir))
		}
		cfg.AddConfigPath(systemDir)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	level, err := logrus.ParseLevel(cfg.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", LogLevelKey, err)
	}

	loaded := Config{
		Directory: Directory{
			Source:     Source(strings.ToLower(strings.TrimSpace(cfg.GetString(DirectorySourceKey)))),
			PasswdPath: cfg.GetString(DirectoryPasswdKey),
		},
		Sessions: Sessions{VarRoot: cfg.GetString(SessionsVarRootKey)},
		Probe: Probe{
			DevRoot:  cfg.GetString(ProbeDevRootKey),
			MailRoot: cfg.GetString(ProbeMailRootKey),
		},
		Limits: Limits{
			MaxUsers:          cfg.GetInt(LimitsMaxUsersKey),
			MaxQueryLength:    cfg.GetInt(LimitsMaxQueryKey),
			PersonalFileBytes: cfg.GetInt64(LimitsFileBytesKey),
		},
		LogLevel: level,
		File:     cfg.ConfigFileUsed(),
	}

	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func (c Config) Validate() error {
	switch c.Directory.Source {
	case SourceAuto, SourceFile, SourceGetent:
	default:
		return fmt.Errorf("invalid %s %q (want auto, file or getent)", DirectorySourceKey, c.Directory.Source)
	}
	if c.Directory.Source != SourceGetent && strings.TrimSpace(c.Directory.PasswdPath) == "" {
		return fmt.Errorf("%s is empty", DirectoryPasswdKey)
	}
	if c.Limits.MaxUsers <= 0 {
		return fmt.Errorf("%s must be positive, got %d", LimitsMaxUsersKey, c.Limits.MaxUsers)
	}
	if c.Limits.MaxQueryLength <= 0 {
		return fmt.Errorf("%s must be positive, got %d", LimitsMaxQueryKey, c.Limits.MaxQueryLength)
	}
	if c.Limits.PersonalFileBytes <= 0 {
		return fmt.Errorf("%s must be positive, got %d", LimitsFileBytesKey, c.Limits.PersonalFileBytes)
	}

	return nil
}
