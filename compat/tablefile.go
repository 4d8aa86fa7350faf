package compat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/Masterminds/semver/v3"

	"github.com/albertocavalcante/go-esx/edition"
)

// tablePermissions is the file mode for generated table artifacts.
const tablePermissions = 0o644

// MarshalJSON encodes the table as an object keyed by edition, each value an
// object of engine -> version. Key order follows the table, not sort order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.editions {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, _ := json.Marshal(string(e))
		valJSON, err := t.entries[e].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the requirement as an engine -> version object in
// insertion order.
func (r *Requirement) MarshalJSON() ([]byte, error) {
	if len(r.engines) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, engine := range r.engines {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, _ := json.Marshal(engine)
		valJSON, _ := json.Marshal(r.versions[engine])
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent encodes the table with indentation, for checked-in artifacts.
func (t *Table) MarshalIndent(prefix, indent string) ([]byte, error) {
	data, err := t.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteTo writes the indented table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	data, err := t.MarshalIndent("", "  ")
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// WriteFile writes the indented table to path.
func (t *Table) WriteFile(path string) error {
	data, err := t.MarshalIndent("", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, tablePermissions)
}

// ReadTableFile reads a table artifact written by [Table.WriteFile].
func ReadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a table artifact, preserving the key order of both
// editions and engines. Every key must be an edition from edition.Fixed.
func ParseTable(data []byte) (*Table, error) {
	fixed := edition.Fixed()
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("failed to parse table JSON: %w", err)
	}

	table := newTable()
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse table JSON: %w", err)
		}
		e := edition.Normalize(key)
		if !slices.Contains(fixed, e) {
			return nil, fmt.Errorf("table entry %q is not an edition with a fixed feature list", key)
		}
		req, err := parseRequirement(dec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse table entry %s: %w", e, err)
		}
		table.add(e, req)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("failed to parse table JSON: %w", err)
	}
	return table, nil
}

func parseRequirement(dec *json.Decoder) (*Requirement, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	req := newRequirement()
	for dec.More() {
		engine, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		var raw string
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("engine %s: %w", engine, err)
		}
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("engine %s: bad version %q: %w", engine, raw, err)
		}
		req.set(engine, raw, v)
	}
	return req, expectDelim(dec, '}')
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("unexpected end of input, want %q", want)
		}
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
