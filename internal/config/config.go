// Package config loads and validates the environment of the TGStash bot
// deployments. Construction is explicit: callers load one of the variant
// schemas once at startup and pass the result around. Any missing or
// malformed key is a fatal error, no partially valid configuration is ever
// returned.
package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"

	"github.com/amirdaaee/TGStash/internal/log"
)

// LoadFileStore builds the file-store bot configuration from an environment
// snapshot.
func LoadFileStore(environ map[string]string) (*FileStoreConfig, error) {
	cfg := &FileStoreConfig{}
	if err := parseInto(cfg, environ); err != nil {
		return nil, err
	}
	cfg.AutoShorten = optionalBool(environ, "AUTO_SHORTEN", true)
	// the storage chat defaults to the first admin
	if cfg.StorageChatID == 0 && len(cfg.AdminIDs) > 0 {
		cfg.StorageChatID = cfg.AdminIDs[0]
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWasabi builds the wasabi upload bot configuration from an environment
// snapshot.
func LoadWasabi(environ map[string]string) (*WasabiConfig, error) {
	cfg := &WasabiConfig{}
	if err := parseInto(cfg, environ); err != nil {
		return nil, err
	}
	cfg.AutoShorten = optionalBool(environ, "AUTO_SHORTEN", true)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFileStoreFromOS snapshots the process environment (merging a .env file
// if present) and loads the file-store schema from it.
func LoadFileStoreFromOS() (*FileStoreConfig, error) {
	loadDotEnv()
	return LoadFileStore(env.ToMap(os.Environ()))
}

// LoadWasabiFromOS snapshots the process environment (merging a .env file if
// present) and loads the wasabi schema from it.
func LoadWasabiFromOS() (*WasabiConfig, error) {
	loadDotEnv()
	return LoadWasabi(env.ToMap(os.Environ()))
}

func loadDotEnv() {
	ll := log.GetLogger(log.ConfigModule)
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		ll.Info("no .env file found")
		return
	}
	ll.Info("found .env file")
	if err := godotenv.Load(); err != nil {
		ll.WithError(err).Fatal("can not load .env file")
	}
}

func parseInto(cfg any, environ map[string]string) error {
	if err := checkRequired(cfg, environ); err != nil {
		return err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return invalidFromParse(cfg, err)
	}
	return nil
}

// checkRequired reports the first field tagged required whose key has no
// value in the snapshot. A present but empty value counts as missing.
func checkRequired(cfg any, environ map[string]string) error {
	for _, f := range envFields(cfg) {
		if f.required && strings.TrimSpace(environ[f.key]) == "" {
			return NewMissingConfigError(f.key)
		}
	}
	return nil
}

// invalidFromParse maps a caarlos0/env parse failure back to the offending
// environment key.
func invalidFromParse(cfg any, err error) error {
	var agg env.AggregateError
	if errors.As(err, &agg) && len(agg.Errors) > 0 {
		err = agg.Errors[0]
	}
	var pe env.ParseError
	if errors.As(err, &pe) {
		return NewInvalidConfigError(keyForField(cfg, pe.Name), "can not parse value", pe.Err)
	}
	return errors.Wrap(err, "can not parse environment")
}

type envField struct {
	name     string
	key      string
	required bool
}

func envFields(cfg any) []envField {
	var fields []envField
	collectEnvFields(reflect.TypeOf(cfg).Elem(), &fields)
	return fields
}

func collectEnvFields(t reflect.Type, out *[]envField) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("env")
		if tag == "" {
			if f.Type.Kind() == reflect.Struct {
				collectEnvFields(f.Type, out)
			}
			continue
		}
		parts := strings.Split(tag, ",")
		ef := envField{name: f.Name, key: parts[0]}
		for _, opt := range parts[1:] {
			if opt == "required" {
				ef.required = true
			}
		}
		*out = append(*out, ef)
	}
}

func keyForField(cfg any, fieldName string) string {
	for _, f := range envFields(cfg) {
		if f.name == fieldName {
			return f.key
		}
	}
	return fieldName
}

// truthy values accepted for boolean keys like AUTO_SHORTEN.
var truthyValues = map[string]struct{}{"true": {}, "1": {}, "yes": {}, "y": {}}

// optionalBool never fails: absence yields the default, a truthy value
// yields true, anything else yields false.
func optionalBool(environ map[string]string, key string, def bool) bool {
	raw, ok := environ[key]
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return def
	}
	_, truthy := truthyValues[strings.ToLower(raw)]
	return truthy
}
