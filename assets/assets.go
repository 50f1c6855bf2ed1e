package assets

import (
	_ "embed"
)

// BridgeScript contains the embedded PyJHora bridge.
//
//go:embed bridge.py
var BridgeScript []byte

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
