package coordinate

import (
	"encoding/json"

	"github.com/matzehuels/cleardef/pkg/errors"
)

// Provider is the hosting registry or service where a component lives.
//
// Like [Shape], the set is closed and matching is case-sensitive against the
// canonical lowercase identifier.
type Provider int

// Known providers. The service also supports npmjs, mavencentral, pypi,
// nuget, rubygems, debian and others; extend providerNames as needed.
const (
	ProviderCratesIo Provider = iota // The canonical crates.io registry
	ProviderGithub                   // github.com
)

// providerNames drives both ParseProvider and String. Index must match the
// constant value.
var providerNames = []string{
	ProviderCratesIo: "cratesio",
	ProviderGithub:   "github",
}

// ParseProvider parses the canonical lowercase identifier of a provider.
// Unknown text is an INVALID_PROVIDER error embedding the offending input.
func ParseProvider(s string) (Provider, error) {
	for provider, name := range providerNames {
		if s == name {
			return Provider(provider), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidProvider, "unknown provider '%s'", s)
}

// String returns the canonical lowercase identifier.
func (p Provider) String() string {
	if int(p) < len(providerNames) {
		return providerNames[p]
	}
	return "unknown"
}

// MarshalJSON encodes the provider as its canonical identifier.
func (p Provider) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a provider from a JSON string via ParseProvider.
func (p *Provider) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseProvider(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
