package coordinate

import (
	"encoding/json"

	"github.com/matzehuels/cleardef/pkg/errors"
)

// Shape is the packaging ecosystem kind of a component (crate, git, ...).
//
// The set is closed: parsing any string outside the table below is an error,
// never a silent default. Matching is case-sensitive against the canonical
// lowercase identifier.
type Shape int

// Known shapes. The service understands many more (npm, maven, pypi, nuget,
// gem, pod, deb, sourcearchive, ...); add them to shapeNames as needed.
const (
	ShapeCrate Shape = iota // A Rust crate
	ShapeGit                // A git repository
)

// shapeNames drives both ParseShape and String so the two can never
// disagree. Index must match the constant value.
var shapeNames = []string{
	ShapeCrate: "crate",
	ShapeGit:   "git",
}

// ParseShape parses the canonical lowercase identifier of a shape.
// Unknown text is an INVALID_SHAPE error embedding the offending input.
func ParseShape(s string) (Shape, error) {
	for shape, name := range shapeNames {
		if s == name {
			return Shape(shape), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidShape, "unknown shape '%s'", s)
}

// String returns the canonical lowercase identifier.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// MarshalJSON encodes the shape as its canonical identifier.
func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a shape from a JSON string via ParseShape.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseShape(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
