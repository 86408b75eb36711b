package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

const (
	defaultForegroundSeconds = 10
	defaultBackgroundSeconds = 60
	defaultTimeoutMS         = 10000
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"language": "",
		"icons":    "unicode",
		"verbose":  false,
		"tick": map[string]interface{}{
			"foreground": defaultForegroundSeconds,
			"background": defaultBackgroundSeconds,
		},
		"notifications": map[string]interface{}{
			"enabled": true,
			"timeout": defaultTimeoutMS,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
