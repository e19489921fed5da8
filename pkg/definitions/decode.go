package definitions

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/cleardef/pkg/errors"
	"github.com/matzehuels/cleardef/pkg/observability"
)

// The service does not return null or an error status for coordinates it has
// not finished analyzing: it returns a definition whose described/licensed
// blocks are present but structurally incomplete. A plain structural decode
// would turn every partially processed component into a hard failure, so the
// definition is decoded in two phases: first capture each recognized key's
// raw value, then strictly decode each block, downgrading failures to nil
// for the two blocks where "unparseable" means "not processed yet".

// recognized top-level keys of a definition object.
const (
	keyCoordinates = "coordinates"
	keyDescribed   = "described"
	keyLicensed    = "licensed"
	keyFiles       = "files"
	keyScores      = "scores"
)

// UnmarshalJSON decodes one definition object.
//
// Field policy:
//   - coordinates: required, strictly decoded; any failure is fatal
//   - described, licensed: the key itself is required; a null or
//     structurally invalid value becomes nil (the error is discarded)
//   - files: optional, defaults to empty; a present value decodes strictly
//   - scores: optional, defaults to the zero score
//   - any recognized key appearing twice is a fatal duplicate-field error
//   - unrecognized keys are ignored
func (d *Definition) UnmarshalJSON(data []byte) error {
	raw, err := scanObject(data)
	if err != nil {
		return err
	}

	var def Definition

	coords, ok := raw[keyCoordinates]
	if !ok {
		return errMissing("definition", keyCoordinates)
	}
	if err := json.Unmarshal(coords, &def.Coordinates); err != nil {
		return fmt.Errorf("invalid coordinates: %w", err)
	}

	def.Described, err = tolerantBlock[Description](raw, keyDescribed)
	if err != nil {
		return err
	}
	def.Licensed, err = tolerantBlock[License](raw, keyLicensed)
	if err != nil {
		return err
	}

	def.Files = []File{}
	if files, ok := raw[keyFiles]; ok && !isNull(files) {
		if err := json.Unmarshal(files, &def.Files); err != nil {
			return fmt.Errorf("invalid files: %w", err)
		}
	}

	if scores, ok := raw[keyScores]; ok && !isNull(scores) {
		if err := json.Unmarshal(scores, &def.Scores); err != nil {
			return fmt.Errorf("invalid scores: %w", err)
		}
	}

	*d = def
	return nil
}

// scanObject token-scans one JSON object, capturing the raw value of each
// recognized key and rejecting duplicates. Unrecognized keys are skipped.
func scanObject(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a definition object, found %v", tok)
	}

	raw := make(map[string]json.RawMessage, 5)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string) // object keys are always strings

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		switch key {
		case keyCoordinates, keyDescribed, keyLicensed, keyFiles, keyScores:
			if _, dup := raw[key]; dup {
				return nil, fmt.Errorf("duplicate field '%s'", key)
			}
			raw[key] = value
		default:
			// unknown keys are ignored for forward compatibility
		}
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return raw, nil
}

// tolerantBlock decodes an optional sub-object under the tolerant policy:
// the key must exist, but a null or structurally invalid value yields nil
// instead of an error. Tolerated failures are reported to the decode hooks.
func tolerantBlock[T any](raw map[string]json.RawMessage, key string) (*T, error) {
	value, ok := raw[key]
	if !ok {
		return nil, errMissing("definition", key)
	}
	if isNull(value) {
		return nil, nil
	}

	var block T
	if err := json.Unmarshal(value, &block); err != nil {
		observability.Decode().OnFieldTolerated(key)
		return nil, nil
	}
	return &block, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// DecodeDefinition decodes a single definition object from a raw payload.
func DecodeDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeDecode, err, "decoding definition")
	}
	return def, nil
}

// DecodeBatch decodes the batch response shape: a JSON object mapping
// coordinate text to definition objects. Definitions are returned in the
// order the decoder encounters them; that order carries no meaning and
// callers must not rely on it.
func DecodeBatch(data []byte) ([]Definition, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decoding definitions response")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(errors.ErrCodeDecode, "expected a definitions object, found %v", tok)
	}

	var defs []Definition
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDecode, err, "decoding definitions response")
		}

		var def Definition
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDecode, err, "decoding definition for '%v'", key)
		}
		defs = append(defs, def)
	}

	observability.Decode().OnBatchDecoded(len(defs))
	return defs, nil
}
