package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadDotenv merges key/value pairs from a dotenv file into the process
// environment so AutomaticEnv picks them up. Variables already present in
// the environment win. A missing file is not an error; the dotenv file is
// optional.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot stat dotenv file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("cannot read dotenv file %s: %w", path, err)
	}

	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); !exists {
			os.Setenv(name, v.GetString(key))
		}
	}
	return nil
}
