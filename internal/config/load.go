package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override answers,
// e.g. STACKGEN_WEB_PORT.
const EnvPrefix = "STACKGEN"

// Load reads answers from path (yaml, json, toml or dotenv, chosen by
// extension) and from STACKGEN_* environment variables, then builds a
// Configuration with FromAnswers. An empty path reads the environment only.
// Environment variables win over file values.
func Load(path string) (Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Configuration{}, fmt.Errorf("read answers %s: %w", path, err)
		}
	}

	answers := make(map[string]string)
	for _, q := range Questions() {
		answers[q.Key] = v.GetString(q.Key)
	}
	return FromAnswers(answers)
}
