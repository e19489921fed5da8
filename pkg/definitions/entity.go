package definitions

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/cleardef/pkg/coordinate"
)

// The service emits definition objects for components it has not finished
// harvesting: the keys are all present but the sub-objects are degenerate.
// Every type below therefore decodes strictly (required keys must be present
// with the right types), so that the tolerant layer in decode.go can tell a
// fully harvested sub-object from a placeholder.

// errMissing is the canonical error for a required key absent from an object.
func errMissing(typ, field string) error {
	return fmt.Errorf("missing field '%s' in %s", field, typ)
}

// errNegative rejects negative values for counters the service defines as unsigned.
func errNegative(typ, field string) error {
	return fmt.Errorf("negative value for field '%s' in %s", field, typ)
}

// =============================================================================
// Coordinates
// =============================================================================

// DefCoords is the coordinates block of a definition as the service returns
// it. Unlike [coordinate.Coordinate] it carries no namespace or curation PR;
// the service echoes those separately.
type DefCoords struct {
	Shape    coordinate.Shape    // JSON key "type"
	Provider coordinate.Provider
	Name     string
	Revision coordinate.Version
}

// String renders shape/provider/name/revision.
func (c DefCoords) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", c.Shape, c.Provider, c.Name, c.Revision)
}

// UnmarshalJSON decodes the coordinates block. All four keys are required;
// unknown shapes and providers are errors.
func (c *DefCoords) UnmarshalJSON(data []byte) error {
	type raw struct {
		Shape    *coordinate.Shape    `json:"type"`
		Provider *coordinate.Provider `json:"provider"`
		Name     *string              `json:"name"`
		Revision *coordinate.Version  `json:"revision"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	switch {
	case r.Shape == nil:
		return errMissing("coordinates", "type")
	case r.Provider == nil:
		return errMissing("coordinates", "provider")
	case r.Name == nil:
		return errMissing("coordinates", "name")
	case r.Revision == nil:
		return errMissing("coordinates", "revision")
	}
	*c = DefCoords{Shape: *r.Shape, Provider: *r.Provider, Name: *r.Name, Revision: *r.Revision}
	return nil
}

// MarshalJSON re-serializes the coordinates block in the service schema.
func (c DefCoords) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Shape    coordinate.Shape    `json:"type"`
		Provider coordinate.Provider `json:"provider"`
		Name     string              `json:"name"`
		Revision coordinate.Version  `json:"revision"`
	}{c.Shape, c.Provider, c.Name, c.Revision})
}

// =============================================================================
// Date
// =============================================================================

// Date is a calendar date ("2006-01-02") without time-of-day or zone.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// =============================================================================
// Shared blocks
// =============================================================================

// Hashes holds content hashes of a component or file. SHA1 is always
// present; SHA256 may be absent for older harvests.
type Hashes struct {
	SHA1   string  `json:"sha1"`
	SHA256 *string `json:"sha256,omitempty"`
}

// UnmarshalJSON decodes hashes; sha1 is required.
func (h *Hashes) UnmarshalJSON(data []byte) error {
	type raw struct {
		SHA1   *string `json:"sha1"`
		SHA256 *string `json:"sha256"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.SHA1 == nil {
		return errMissing("hashes", "sha1")
	}
	*h = Hashes{SHA1: *r.SHA1, SHA256: r.SHA256}
	return nil
}

// Scores is the harvest-quality score block attached to descriptions.
type Scores struct {
	Total  int `json:"total"`
	Date   int `json:"date"`
	Source int `json:"source"`
}

// UnmarshalJSON decodes a score block; all three counters are required and
// non-negative.
func (s *Scores) UnmarshalJSON(data []byte) error {
	type raw struct {
		Total  *int `json:"total"`
		Date   *int `json:"date"`
		Source *int `json:"source"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	for field, v := range map[string]*int{"total": r.Total, "date": r.Date, "source": r.Source} {
		if v == nil {
			return errMissing("scores", field)
		}
		if *v < 0 {
			return errNegative("scores", field)
		}
	}
	*s = Scores{Total: *r.Total, Date: *r.Date, Source: *r.Source}
	return nil
}

// SourceLocation points at the source repository a component was built from.
type SourceLocation struct {
	Type      string `json:"type"`
	Provider  string `json:"provider"`
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Revision  string `json:"revision"`
	URL       string `json:"url"`
}

// UnmarshalJSON decodes a source location; every field is required.
func (l *SourceLocation) UnmarshalJSON(data []byte) error {
	type raw struct {
		Type      *string `json:"type"`
		Provider  *string `json:"provider"`
		Namespace *string `json:"namespace"`
		Name      *string `json:"name"`
		Revision  *string `json:"revision"`
		URL       *string `json:"url"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	fields := map[string]*string{
		"type": r.Type, "provider": r.Provider, "namespace": r.Namespace,
		"name": r.Name, "revision": r.Revision, "url": r.URL,
	}
	for field, v := range fields {
		if v == nil {
			return errMissing("sourceLocation", field)
		}
	}
	*l = SourceLocation{
		Type: *r.Type, Provider: *r.Provider, Namespace: *r.Namespace,
		Name: *r.Name, Revision: *r.Revision, URL: *r.URL,
	}
	return nil
}

// =============================================================================
// Description
// =============================================================================

// Description is the "described" block of a definition: facts the service
// harvested about the component itself.
type Description struct {
	ReleaseDate    Date              `json:"releaseDate"`
	SourceLocation *SourceLocation   `json:"sourceLocation,omitempty"`
	ProjectWebsite *string           `json:"projectWebsite,omitempty"`
	URLs           map[string]string `json:"urls"`
	Hashes         Hashes            `json:"hashes"`
	Files          int               `json:"files"`
	Tools          []string          `json:"tools"`
	ToolScore      Scores            `json:"toolScore"`
	Score          Scores            `json:"score"`
}

// UnmarshalJSON decodes a description block. releaseDate, urls, hashes,
// files, tools, toolScore and score are required; sourceLocation and
// projectWebsite are optional. Components the service has not harvested emit
// degenerate blocks missing these keys, which is exactly what the tolerant
// layer detects.
func (d *Description) UnmarshalJSON(data []byte) error {
	type raw struct {
		ReleaseDate    *Date             `json:"releaseDate"`
		SourceLocation *SourceLocation   `json:"sourceLocation"`
		ProjectWebsite *string           `json:"projectWebsite"`
		URLs           map[string]string `json:"urls"`
		Hashes         *Hashes           `json:"hashes"`
		Files          *int              `json:"files"`
		Tools          []string          `json:"tools"`
		ToolScore      *Scores           `json:"toolScore"`
		Score          *Scores           `json:"score"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	switch {
	case r.ReleaseDate == nil:
		return errMissing("described", "releaseDate")
	case r.URLs == nil:
		return errMissing("described", "urls")
	case r.Hashes == nil:
		return errMissing("described", "hashes")
	case r.Files == nil:
		return errMissing("described", "files")
	case r.Tools == nil:
		return errMissing("described", "tools")
	case r.ToolScore == nil:
		return errMissing("described", "toolScore")
	case r.Score == nil:
		return errMissing("described", "score")
	case *r.Files < 0:
		return errNegative("described", "files")
	}
	*d = Description{
		ReleaseDate:    *r.ReleaseDate,
		SourceLocation: r.SourceLocation,
		ProjectWebsite: r.ProjectWebsite,
		URLs:           r.URLs,
		Hashes:         *r.Hashes,
		Files:          *r.Files,
		Tools:          r.Tools,
		ToolScore:      *r.ToolScore,
		Score:          *r.Score,
	}
	return nil
}

// =============================================================================
// License
// =============================================================================

// LicenseScore is the score block attached to license data.
type LicenseScore struct {
	Total       int `json:"total"`
	Declared    int `json:"declared"`
	Discovered  int `json:"discovered"`
	Consistency int `json:"consistency"`
	SPDX        int `json:"spdx"`
	Texts       int `json:"texts"`
}

// UnmarshalJSON decodes a license score block; all six counters are required.
func (s *LicenseScore) UnmarshalJSON(data []byte) error {
	type raw struct {
		Total       *int `json:"total"`
		Declared    *int `json:"declared"`
		Discovered  *int `json:"discovered"`
		Consistency *int `json:"consistency"`
		SPDX        *int `json:"spdx"`
		Texts       *int `json:"texts"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	fields := map[string]*int{
		"total": r.Total, "declared": r.Declared, "discovered": r.Discovered,
		"consistency": r.Consistency, "spdx": r.SPDX, "texts": r.Texts,
	}
	for field, v := range fields {
		if v == nil {
			return errMissing("licenseScore", field)
		}
		if *v < 0 {
			return errNegative("licenseScore", field)
		}
	}
	*s = LicenseScore{
		Total: *r.Total, Declared: *r.Declared, Discovered: *r.Discovered,
		Consistency: *r.Consistency, SPDX: *r.SPDX, Texts: *r.Texts,
	}
	return nil
}

// Attribution lists attribution parties discovered in a facet.
type Attribution struct {
	Unknown int      `json:"unknown"`
	Parties []string `json:"parties,omitempty"`
}

// UnmarshalJSON decodes an attribution block; unknown is required, parties
// defaults to empty.
func (a *Attribution) UnmarshalJSON(data []byte) error {
	type raw struct {
		Unknown *int     `json:"unknown"`
		Parties []string `json:"parties"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Unknown == nil {
		return errMissing("attribution", "unknown")
	}
	*a = Attribution{Unknown: *r.Unknown, Parties: r.Parties}
	return nil
}

// Discovered lists license expressions discovered in a facet.
type Discovered struct {
	Unknown     int      `json:"unknown"`
	Expressions []string `json:"expressions"`
}

// UnmarshalJSON decodes a discovered block; both keys are required.
func (d *Discovered) UnmarshalJSON(data []byte) error {
	type raw struct {
		Unknown     *int     `json:"unknown"`
		Expressions []string `json:"expressions"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Unknown == nil {
		return errMissing("discovered", "unknown")
	}
	if r.Expressions == nil {
		return errMissing("discovered", "expressions")
	}
	*d = Discovered{Unknown: *r.Unknown, Expressions: r.Expressions}
	return nil
}

// Facet groups license facts for one slice of a component's files.
type Facet struct {
	Attribution Attribution `json:"attribution"`
	Discovered  Discovered  `json:"discovered"`
	Files       int         `json:"files"`
}

// UnmarshalJSON decodes a facet; all three keys are required.
func (f *Facet) UnmarshalJSON(data []byte) error {
	type raw struct {
		Attribution *Attribution `json:"attribution"`
		Discovered  *Discovered  `json:"discovered"`
		Files       *int         `json:"files"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	switch {
	case r.Attribution == nil:
		return errMissing("facet", "attribution")
	case r.Discovered == nil:
		return errMissing("facet", "discovered")
	case r.Files == nil:
		return errMissing("facet", "files")
	}
	*f = Facet{Attribution: *r.Attribution, Discovered: *r.Discovered, Files: *r.Files}
	return nil
}

// Facets holds the per-facet license breakdown. Only the core facet is
// modeled; the service can be configured with more.
type Facets struct {
	Core Facet `json:"core"`
}

// UnmarshalJSON decodes the facets block; core is required.
func (f *Facets) UnmarshalJSON(data []byte) error {
	type raw struct {
		Core *Facet `json:"core"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Core == nil {
		return errMissing("facets", "core")
	}
	*f = Facets{Core: *r.Core}
	return nil
}

// License is the "licensed" block of a definition: the harvested and curated
// license conclusions for the component.
type License struct {
	Declared  string       `json:"declared"`
	Facets    Facets       `json:"facets"`
	ToolScore LicenseScore `json:"toolScore"`
	Score     LicenseScore `json:"score"`
}

// UnmarshalJSON decodes a license block; every key is required. As with
// [Description], unharvested components emit degenerate blocks that fail
// here and are downgraded to absent by the tolerant layer.
func (l *License) UnmarshalJSON(data []byte) error {
	type raw struct {
		Declared  *string       `json:"declared"`
		Facets    *Facets       `json:"facets"`
		ToolScore *LicenseScore `json:"toolScore"`
		Score     *LicenseScore `json:"score"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	switch {
	case r.Declared == nil:
		return errMissing("licensed", "declared")
	case r.Facets == nil:
		return errMissing("licensed", "facets")
	case r.ToolScore == nil:
		return errMissing("licensed", "toolScore")
	case r.Score == nil:
		return errMissing("licensed", "score")
	}
	*l = License{Declared: *r.Declared, Facets: *r.Facets, ToolScore: *r.ToolScore, Score: *r.Score}
	return nil
}

// =============================================================================
// Files and top-level score
// =============================================================================

// File is one file of the component as harvested by the service.
type File struct {
	Path         string   `json:"path"`
	Hashes       *Hashes  `json:"hashes,omitempty"`
	License      *string  `json:"license,omitempty"`
	Attributions []string `json:"attributions,omitempty"`
	Natures      []string `json:"natures,omitempty"`
	Token        *string  `json:"token,omitempty"`
}

// UnmarshalJSON decodes a file record; only path is required. A bad file
// entry aborts the whole definition (the files list is not tolerated).
func (f *File) UnmarshalJSON(data []byte) error {
	type raw struct {
		Path         *string  `json:"path"`
		Hashes       *Hashes  `json:"hashes"`
		License      *string  `json:"license"`
		Attributions []string `json:"attributions"`
		Natures      []string `json:"natures"`
		Token        *string  `json:"token"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Path == nil {
		return errMissing("file", "path")
	}
	*f = File{
		Path: *r.Path, Hashes: r.Hashes, License: r.License,
		Attributions: r.Attributions, Natures: r.Natures, Token: r.Token,
	}
	return nil
}

// TopLevelScore is the overall definition score. A definition decoded from a
// payload without a scores key keeps the zero value.
type TopLevelScore struct {
	Effective int `json:"effective"`
	Tool      int `json:"tool"`
}

// UnmarshalJSON decodes the top-level score; both keys are required.
func (s *TopLevelScore) UnmarshalJSON(data []byte) error {
	type raw struct {
		Effective *int `json:"effective"`
		Tool      *int `json:"tool"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Effective == nil {
		return errMissing("scores", "effective")
	}
	if r.Tool == nil {
		return errMissing("scores", "tool")
	}
	if *r.Effective < 0 || *r.Tool < 0 {
		return errNegative("scores", "effective/tool")
	}
	*s = TopLevelScore{Effective: *r.Effective, Tool: *r.Tool}
	return nil
}

// =============================================================================
// Definition
// =============================================================================

// Definition is the full metadata record the service returns for one
// coordinate. It is an immutable snapshot of a single response: construct it
// by decoding and never mutate it.
//
// Described and Licensed are nil when the service has the component on file
// but has not finished processing it; see decode.go for the exact policy.
type Definition struct {
	Coordinates DefCoords     `json:"coordinates"`
	Described   *Description  `json:"described"`
	Licensed    *License      `json:"licensed"`
	Files       []File        `json:"files"`
	Scores      TopLevelScore `json:"scores"`
}

// Harvested reports whether the service has finished processing the
// component: both optional blocks decoded successfully.
func (d *Definition) Harvested() bool {
	return d.Described != nil && d.Licensed != nil
}
