package app

import (
	"os"
	"time"

	"github.com/alecthomas/hcl"
	"github.com/alecthomas/kong"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/internal/system"
	"github.com/cashapp/sysident/platform"
)

const userConfigPath = "~/.sysident.hcl"

var userConfigSchema = func() string {
	schema, err := hcl.Schema(&UserConfig{})
	if err != nil {
		return ""
	}
	data, err := hcl.MarshalAST(schema)
	if err != nil {
		return ""
	}
	return string(data)
}()

// PropertiesConfig overrides the signals used to resolve the current platform.
type PropertiesConfig struct {
	OSName        string `hcl:"os-name,optional" help:"Operating system name, eg. Linux."`
	OSArch        string `hcl:"os-arch,optional" help:"CPU architecture name, eg. x86_64."`
	FileSeparator string `hcl:"file-separator,optional" help:"File path separator, a backslash forces Windows."`
	RuntimeName   string `hcl:"runtime-name,optional" help:"Runtime name, Dalvik on Linux forces Android."`
}

// UserConfig is stored in ~/.sysident.hcl
type UserConfig struct {
	LDD          string            `hcl:"ldd,optional" help:"ldd executable used to detect the C standard library."`
	ProbeTimeout time.Duration     `hcl:"probe-timeout,optional" help:"Maximum time to wait for ldd."`
	Properties   *PropertiesConfig `hcl:"properties,block" help:"Override platform signals."`
}

// LoadUserConfig from disk.
func LoadUserConfig(path string) (UserConfig, error) {
	config := UserConfig{}
	// always return a valid config on error, with defaults set.
	_ = hcl.Unmarshal([]byte{}, &config)
	path, err := system.ExpandHome(path)
	if err != nil {
		return config, errors.WithStack(err)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return config, errors.WithStack(err)
	}
	err = hcl.Unmarshal(data, &config)
	if err != nil {
		return config, errors.WithStack(err)
	}
	return config, nil
}

// properties returns the configured overrides.
func (u UserConfig) properties() platform.MapProperties {
	props := platform.MapProperties{}
	if u.Properties == nil {
		return props
	}
	for key, value := range map[string]string{
		platform.PropOSName:        u.Properties.OSName,
		platform.PropArch:          u.Properties.OSArch,
		platform.PropFileSeparator: u.Properties.FileSeparator,
		platform.PropRuntimeName:   u.Properties.RuntimeName,
	} {
		if value != "" {
			props[key] = value
		}
	}
	return props
}

// UserConfigResolver is a Kong configuration resolver for the sysident user configuration file.
func UserConfigResolver(userConfig UserConfig) kong.Resolver {
	return &userConfigResolver{userConfig}
}

type userConfigResolver struct{ config UserConfig }

func (u *userConfigResolver) Validate(app *kong.Application) error { return nil }
func (u *userConfigResolver) Resolve(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
	switch flag.Name {
	case "ldd":
		if u.config.LDD != "" {
			return u.config.LDD, nil
		}

	case "probe-timeout":
		if u.config.ProbeTimeout > 0 {
			return u.config.ProbeTimeout.String(), nil
		}

	case "os-name", "os-arch", "file-separator", "runtime-name":
		if value, ok := u.config.properties().Lookup(flagProperties[flag.Name]); ok {
			return value, nil
		}
	}
	return nil, nil
}
