// Package config loads a TopicConfig from YAML or TOML, with optional
// environment-variable overrides and an optional file-change watch for
// the demo binary. It has no dependency on the flowtopic package
// itself; it only produces values a caller passes into flowtopic.Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/golobby/cast"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedExtension is returned by Load when path's extension is
// neither .yaml/.yml nor .toml.
var ErrUnsupportedExtension = errors.New("config: unsupported file extension")

// TopicConfig is the on-disk shape of a Topic's construction parameters.
// Capacity is a pointer so that "absent" (unbounded) is distinguishable
// from an explicit zero. TTL is a plain duration: zero means no expiry.
type TopicConfig struct {
	Name           string        `yaml:"name" toml:"name"`
	Capacity       *int          `yaml:"capacity" toml:"capacity"`
	TTL            time.Duration `yaml:"ttl" toml:"ttl"`
	Fanout         bool          `yaml:"fanout" toml:"fanout"`
	EnableReaper   bool          `yaml:"enable_reaper" toml:"enable_reaper"`
	ReaperInterval time.Duration `yaml:"reaper_interval" toml:"reaper_interval"`
}

// Load reads path and decodes it into a TopicConfig, dispatching on the
// file extension the way the teacher's feeder layer picks a format per
// source file.
func Load(path string) (*TopicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &TopicConfig{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode yaml %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode toml %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, ext)
	}

	return cfg, nil
}

// ApplyEnvOverrides coerces FLOWTOPIC_* environment values onto cfg's
// fields, using golobby/cast to convert the raw string into each
// field's declared type — the same per-field casting role
// github.com/golobby/cast plays in the teacher's affixed-env feeder.
func ApplyEnvOverrides(cfg *TopicConfig, environ []string) error {
	overrides := map[string]string{}
	const prefix = "FLOWTOPIC_"
	for _, kv := range environ {
		if !strings.HasPrefix(kv, prefix) {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimPrefix(parts[0], prefix)
		overrides[strings.ToUpper(key)] = parts[1]
	}
	if len(overrides) == 0 {
		return nil
	}

	rv := reflect.ValueOf(cfg).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		envName := strings.ToUpper(field.Name)
		raw, ok := overrides[envName]
		if !ok {
			continue
		}
		if err := setField(rv.Field(i), raw); err != nil {
			return fmt.Errorf("config: env override %s%s: %w", prefix, envName, err)
		}
	}
	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.Ptr:
		elemType := field.Type().Elem()
		converted, err := cast.FromType(raw, elemType)
		if err != nil {
			return err
		}
		ptr := reflect.New(elemType)
		ptr.Elem().Set(reflect.ValueOf(converted))
		field.Set(ptr)
		return nil
	case reflect.Int64:
		// time.Duration is int64-backed; parse it as a duration string
		// ("5s") rather than a bare integer of nanoseconds.
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
		return nil
	default:
		converted, err := cast.FromType(raw, field.Type())
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(converted))
		return nil
	}
}

// WatchFile watches path for writes and invokes onChange on its own
// goroutine each time the file is rewritten. It does not itself reload
// or re-validate the file; callers decide what to do with the signal.
// It is a demo-layer convenience only — flowtopic.Topic's capacity and
// TTL are fixed at construction and are never live-reconfigured.
func WatchFile(path string, onChange func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: new watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: watch %s: %w", dir, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	go func() {
		for event := range watcher.Events {
			changedAbs, err := filepath.Abs(event.Name)
			if err != nil || changedAbs != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				onChange()
			}
		}
	}()

	return watcher, nil
}
