package config

import (
	"os"

	"gitlab.com/distributed_lab/figure"
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

type Config interface {
	Log() *logan.Entry
	Output() Output
	Display() Display
	Server() Server
}

type config struct {
	getter kv.Getter

	log     comfig.Once
	output  comfig.Once
	display comfig.Once
	server  comfig.Once
}

func New(getter kv.Getter) Config {
	return &config{getter: getter}
}

// NewGetter reads a viper file from path, falls back to KV_VIPER_FILE and
// finally to built-in defaults.
func NewGetter(path string) kv.Getter {
	if path != "" {
		return kv.NewViperFile(path)
	}
	if os.Getenv("KV_VIPER_FILE") != "" {
		return kv.MustFromEnv()
	}
	return StaticGetter{}
}

// StaticGetter serves configuration sections from memory.
type StaticGetter map[string]map[string]interface{}

func (g StaticGetter) GetStringMap(key string) (map[string]interface{}, error) {
	if section, ok := g[key]; ok {
		return section, nil
	}
	return map[string]interface{}{}, nil
}

func (c *config) section(key string, dst interface{}) {
	raw, err := c.getter.GetStringMap(key)
	if err != nil {
		panic(errors.Wrap(err, "failed to get config section", logan.F{"section": key}))
	}
	if err := figure.Out(dst).From(raw).Please(); err != nil {
		panic(errors.Wrap(err, "failed to figure out config section", logan.F{"section": key}))
	}
}

func (c *config) Log() *logan.Entry {
	return c.log.Do(func() interface{} {
		var cfg struct {
			Level string `fig:"level"`
		}
		cfg.Level = "info"
		c.section("log", &cfg)
		return logan.New().Level(parseLevel(cfg.Level))
	}).(*logan.Entry)
}

func parseLevel(s string) logan.Level {
	switch s {
	case "debug":
		return logan.DebugLevel
	case "warn", "warning":
		return logan.WarnLevel
	case "error":
		return logan.ErrorLevel
	}
	return logan.InfoLevel
}
