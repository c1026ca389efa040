package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir          string `json:"data_dir"`
	DatabaseFile     string `json:"database_file"`
	Language         string `json:"language"`
	LogLevel         string `json:"log_level"`
	UsernamePolicy   string `json:"username_policy"`
	PasswordStorage  string `json:"password_storage"`
	BcryptCost       int    `json:"bcrypt_cost"`
	RememberMeScheme string `json:"remember_me_scheme"`

	PermissiveRegistration bool `json:"permissive_registration"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The path comes from -c/-config or CREDKEEPER_CONFIG (see flagx.ConfigFile).
// With no path the function returns without changes. Zero values in the
// file leave the corresponding field untouched. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.DatabaseFile, jc.DatabaseFile)
	overlay(&cfg.Language, jc.Language)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.UsernamePolicy, jc.UsernamePolicy)
	overlay(&cfg.PermissiveRegistration, jc.PermissiveRegistration)
	overlay(&cfg.PasswordStorage, jc.PasswordStorage)
	overlay(&cfg.BcryptCost, jc.BcryptCost)
	overlay(&cfg.RememberMeScheme, jc.RememberMeScheme)
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
