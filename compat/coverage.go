package compat

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed data/plugins.json
var embeddedCoverage []byte

//go:embed data/coverage.schema.json
var coverageSchemaJSON string

const coverageSchemaURL = "https://go-esx.local/schemas/coverage.schema.json"

// Support maps an engine name to the minimum version supporting a feature.
type Support map[string]string

// Coverage maps a feature name to its per-engine support.
type Coverage map[string]Support

// defaultEngines is the engine visiting order used by [Synthesize] unless
// another list is given. It fixes the order of engines in every requirement.
var defaultEngines = []string{
	"chrome",
	"opera",
	"edge",
	"firefox",
	"safari",
	"node",
	"deno",
	"ie",
	"ios",
	"samsung",
	"opera_mobile",
	"electron",
}

// DefaultEngines returns a copy of the default engine visiting order.
func DefaultEngines() []string {
	return slices.Clone(defaultEngines)
}

var coverageSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(coverageSchemaURL, strings.NewReader(coverageSchemaJSON)); err != nil {
		return nil, fmt.Errorf("coverage schema load failed: %w", err)
	}
	schema, err := c.Compile(coverageSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("coverage schema compile failed: %w", err)
	}
	return schema, nil
})

// ParseCoverage decodes and validates a coverage matrix.
func ParseCoverage(data []byte) (Coverage, error) {
	schema, err := coverageSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse coverage JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("coverage matrix is invalid: %w", err)
	}

	var cov Coverage
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&cov); err != nil {
		return nil, fmt.Errorf("failed to decode coverage matrix: %w", err)
	}
	return cov, nil
}

// LoadCoverage reads a coverage matrix from r.
func LoadCoverage(r io.Reader) (Coverage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage matrix: %w", err)
	}
	return ParseCoverage(data)
}

// ReadCoverageFile reads a coverage matrix from a file.
func ReadCoverageFile(path string) (Coverage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage matrix: %w", err)
	}
	return ParseCoverage(data)
}

var defaultCoverage = sync.OnceValues(func() (Coverage, error) {
	return ParseCoverage(embeddedCoverage)
})

// DefaultCoverage returns the embedded coverage matrix. The returned value
// is shared; callers must not modify it.
func DefaultCoverage() (Coverage, error) {
	return defaultCoverage()
}
