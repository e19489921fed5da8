package coordinate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/cleardef/pkg/errors"
)

// Coordinate identifies a specific component revision.
//
// For example, https://clearlydefined.io/definitions/crate/cratesio/-/syn/1.0.14
//
//   - Shape "crate": the kind of component (npm, git, nuget, maven, crate...)
//   - Provider "cratesio": where the component can be found
//   - Namespace "": GitHub org, NPM scope, Maven group id... Empty for
//     component systems without namespaces; rendered as "-" in text form.
//   - Name "syn": the simple component name within the namespace
//   - Version "1.0.14": version, commit id, or other revision differentiator
//   - CurationPR: optional GitHub PR number of a pending curation to apply to
//     the harvested and curated data before returning it
//
// Coordinates round-trip through the canonical slash-delimited text form:
// Parse(c.String()) reproduces c, and Parse(s).String() reproduces s.
type Coordinate struct {
	Shape      Shape
	Provider   Provider
	Namespace  string // empty = no namespace
	Name       string
	Version    Version
	CurationPR *int
}

// segment names for positional parse errors, in text-form order.
var segmentNames = []string{"shape", "provider", "namespace", "name", "version"}

// Parse parses the canonical slash-delimited coordinate form:
//
//	shape/provider/namespace/name/version[/pr/number]
//
// The namespace segment "-" decodes to the empty namespace. The error names
// the positional segment that failed: a missing segment, an unknown shape or
// provider, a post-version segment other than the literal "pr", an
// unparseable PR number, or trailing garbage.
func Parse(text string) (Coordinate, error) {
	segs := strings.Split(text, "/")

	if len(segs) < len(segmentNames) {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"missing %s segment in '%s'", segmentNames[len(segs)], text)
	}

	shape, err := ParseShape(segs[0])
	if err != nil {
		return Coordinate{}, err
	}
	provider, err := ParseProvider(segs[1])
	if err != nil {
		return Coordinate{}, err
	}

	namespace := segs[2]
	if namespace == "-" {
		namespace = ""
	}

	coord := Coordinate{
		Shape:     shape,
		Provider:  provider,
		Namespace: namespace,
		Name:      segs[3],
		Version:   ParseVersion(segs[4]),
	}

	switch {
	case len(segs) == 5:
		// no curation suffix
	case segs[5] != "pr":
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"expected 'pr' marker segment, found '%s' in '%s'", segs[5], text)
	case len(segs) == 6:
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"missing pr number segment in '%s'", text)
	case len(segs) > 7:
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"unexpected trailing segment '%s' in '%s'", segs[7], text)
	default:
		// Only the canonical decimal form round-trips through String.
		pr, err := strconv.Atoi(segs[6])
		if err != nil || pr < 0 || strconv.Itoa(pr) != segs[6] {
			return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
				"invalid pr number '%s' in '%s'", segs[6], text)
		}
		coord.CurationPR = &pr
	}

	return coord, nil
}

// String renders the canonical slash-delimited form, the exact inverse of
// Parse. The empty namespace renders as "-"; the /pr/number suffix appears
// only when CurationPR is set.
func (c Coordinate) String() string {
	ns := c.Namespace
	if ns == "" {
		ns = "-"
	}

	s := fmt.Sprintf("%s/%s/%s/%s/%s", c.Shape, c.Provider, ns, c.Name, c.Version)
	if c.CurationPR != nil {
		s += "/pr/" + strconv.Itoa(*c.CurationPR)
	}
	return s
}

// Equal reports structural equality of two coordinates.
func (c Coordinate) Equal(o Coordinate) bool {
	if c.Shape != o.Shape || c.Provider != o.Provider ||
		c.Namespace != o.Namespace || c.Name != o.Name ||
		!c.Version.Equal(o.Version) {
		return false
	}
	if (c.CurationPR == nil) != (o.CurationPR == nil) {
		return false
	}
	return c.CurationPR == nil || *c.CurationPR == *o.CurationPR
}
