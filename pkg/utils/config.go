// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ConfigurationFileDirectory string
)

func LoadConfiguration(configFileName string, required bool) bool {
	viper.SetConfigName(configFileName)
	viper.AddConfigPath(ResolvePath(ConfigurationFileDirectory))
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.zapmock")
	viper.AddConfigPath("/usr/local/etc/zapmock/")
	viper.AddConfigPath("/etc/zapmock/")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if required {
				log.Fatal().Msgf("Config file not found: %s", configFileName)
			}
			log.Info().Msgf("Config file not found: %s", configFileName)
			return false
		}

		if required {
			log.Fatal().Msgf("Failed to load required config file: %s", configFileName)
		}
		return false
	}
	log.Info().Msgf("Loaded config file: %s", viper.ConfigFileUsed())

	return true
}

// ResolvePath expands "~" and environment variables in a path.
func ResolvePath(path string) string {
	if !strings.Contains(path, "~") {
		return os.ExpandEnv(path)
	}

	if path == "~" {
		if usr, err := user.Current(); err == nil {
			path = usr.HomeDir
		}
	} else if strings.HasPrefix(path, "~/") {
		if usr, err := user.Current(); err == nil {
			path = filepath.Join(usr.HomeDir, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
