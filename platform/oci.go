package platform

import (
	"github.com/containerd/platforms"
	specs "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/cashapp/sysident/errors"
)

// OCI returns the normalised OCI image platform, eg. linux/arm/v7.
func (p Platform) OCI() (specs.Platform, error) {
	goos, goarch, err := p.Go()
	if err != nil {
		return specs.Platform{}, err
	}
	return platforms.Normalize(specs.Platform{OS: goos, Architecture: goarch}), nil
}

// ParseOCI parses an OCI platform specifier such as "linux/amd64" or
// "darwin/arm64/v8". The variant is accepted but does not contribute to the
// resulting Platform.
func ParseOCI(specifier string) (Platform, error) {
	spec, err := platforms.Parse(specifier)
	if err != nil {
		return Platform{}, errors.Wrapf(ErrInvalidIdentifier, "%s", err)
	}
	return FromGo(spec.OS, spec.Architecture)
}

// FormatOCI formats the OCI specifier of the platform, eg. linux/arm64.
func (p Platform) FormatOCI() (string, error) {
	spec, err := p.OCI()
	if err != nil {
		return "", err
	}
	return platforms.Format(spec), nil
}
