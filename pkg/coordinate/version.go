package coordinate

import (
	"encoding/json"

	"github.com/Masterminds/semver/v3"
)

// Version is a component revision: either a strict semantic version or an
// opaque string.
//
// Most ecosystems the service covers use semantic versioning, but git commit
// hashes, dates and other schemes appear in the same textual field, so
// parsing never fails. The zero value is the empty opaque string.
type Version struct {
	sem *semver.Version // nil for the opaque case
	raw string          // original text, kept for opaque display
}

// ParseVersion parses text as a version. It always succeeds: text satisfying
// the strict semver grammar (major.minor.patch with optional pre-release and
// build metadata, no "v" prefix) becomes a semantic version; anything else is
// kept verbatim as an opaque version.
func ParseVersion(text string) Version {
	// Most revisions stored by the service are semver, so try that first
	if v, err := semver.StrictNewVersion(text); err == nil {
		return Version{sem: v, raw: text}
	}
	return Version{raw: text}
}

// Semver constructs a Version from an already-parsed semantic version.
func Semver(v *semver.Version) Version {
	return Version{sem: v, raw: v.String()}
}

// IsSemver reports whether the version parsed as a strict semantic version.
func (v Version) IsSemver() bool {
	return v.sem != nil
}

// Sem returns the parsed semantic version, or nil for an opaque version.
func (v Version) Sem() *semver.Version {
	return v.sem
}

// String renders the version: the canonical normalized form for a semantic
// version, the original text byte-for-byte otherwise.
func (v Version) String() string {
	if v.sem != nil {
		return v.sem.String()
	}
	return v.raw
}

// Equal reports structural equality: both semver with equal values and equal
// build metadata, or both opaque with identical text.
func (v Version) Equal(o Version) bool {
	if v.IsSemver() != o.IsSemver() {
		return false
	}
	if v.sem != nil {
		return v.sem.String() == o.sem.String()
	}
	return v.raw == o.raw
}

// MarshalJSON encodes the version as its display string.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a version from a JSON string. It only fails when the
// value is not a string at all.
func (v *Version) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = ParseVersion(raw)
	return nil
}
