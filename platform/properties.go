package platform

import (
	"path/filepath"
	"runtime"
)

// Property keys consulted when resolving the current platform.
const (
	PropArch          = "os.arch"
	PropOSName        = "os.name"
	PropFileSeparator = "file.separator"
	PropRuntimeName   = "runtime.name"
)

// Properties is a read-only view of the environment signals that identify the
// running system.
type Properties interface {
	// Lookup returns the value of "key" and whether it is set.
	Lookup(key string) (string, bool)
}

// MapProperties is a static set of properties.
type MapProperties map[string]string

var _ Properties = MapProperties{}

func (m MapProperties) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// System reports the platform this binary was compiled for.
var System Properties = systemProperties{}

type systemProperties struct{}

func (systemProperties) Lookup(key string) (string, bool) {
	switch key {
	case PropArch:
		return runtime.GOARCH, true
	case PropOSName:
		return runtime.GOOS, true
	case PropFileSeparator:
		return string(filepath.Separator), true
	case PropRuntimeName:
		return "go", true
	}
	return "", false
}

// Native reports the platform of the running kernel where it can be queried,
// which differs from System for emulated or cross-compiled binaries.
//
// Keys that cannot be queried fall back to System.
func Native() Properties {
	props := MapProperties{}
	if machine, sysname, err := uname(); err == nil {
		props[PropArch] = machine
		// uname reports Linux on Android.
		if runtime.GOOS != "android" {
			props[PropOSName] = sysname
		}
	}
	return Overlay(props, System)
}

// Overlay returns Properties that consult each layer in turn, returning the
// first value that is set.
func Overlay(layers ...Properties) Properties {
	return overlay(layers)
}

type overlay []Properties

func (o overlay) Lookup(key string) (string, bool) {
	for _, layer := range o {
		if layer == nil {
			continue
		}
		if value, ok := layer.Lookup(key); ok {
			return value, true
		}
	}
	return "", false
}
