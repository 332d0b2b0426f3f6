package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	mp3tag "github.com/sharananure/MP3TagEditor"
)

// EnvConfigPath points the CLI at an alternate config file.
const EnvConfigPath = "MP3TAG_CONFIG"

// defaultConfigFile is looked for in the working directory when
// MP3TAG_CONFIG is unset. A missing default file is not an error.
const defaultConfigFile = "mp3tag.toml"

// config carries the CLI's tunable behavior. The zero value is the
// default: no backup, no padding, no write verification, silent logging.
type config struct {
	BackupSuffix    string
	Padding         int
	VerifyWrites    bool
	PreserveModTime bool
	LogLevel        string
}

type fileConfig struct {
	BackupSuffix    string `toml:"backup_suffix"`
	Padding         int    `toml:"padding"`
	VerifyWrites    bool   `toml:"verify_writes"`
	PreserveModTime bool   `toml:"preserve_mod_time"`
	LogLevel        string `toml:"log_level"`
}

// loadConfig reads the TOML config and overlays only the keys the file
// actually defines onto the defaults.
func loadConfig() (config, error) {
	var cfg config

	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("backup_suffix") {
		cfg.BackupSuffix = raw.BackupSuffix
	}
	if meta.IsDefined("padding") {
		cfg.Padding = raw.Padding
	}
	if meta.IsDefined("verify_writes") {
		cfg.VerifyWrites = raw.VerifyWrites
	}
	if meta.IsDefined("preserve_mod_time") {
		cfg.PreserveModTime = raw.PreserveModTime
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = raw.LogLevel
	}

	return cfg, nil
}

// writeOptions converts the config into the library's write options.
func (c config) writeOptions() []mp3tag.WriteOption {
	var opts []mp3tag.WriteOption
	if c.BackupSuffix != "" {
		opts = append(opts, mp3tag.WithBackup(c.BackupSuffix))
	}
	if c.Padding > 0 {
		opts = append(opts, mp3tag.WithPadding(c.Padding))
	}
	if c.VerifyWrites {
		opts = append(opts, mp3tag.WithValidation())
	}
	if c.PreserveModTime {
		opts = append(opts, mp3tag.WithPreserveModTime())
	}
	return opts
}
