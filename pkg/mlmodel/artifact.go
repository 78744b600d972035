package mlmodel

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed artifact.schema.json
var artifactSchemaJSON string

const artifactSchemaURL = "artifact.schema.json"

var artifactSchema = jsonschema.MustCompileString(artifactSchemaURL, artifactSchemaJSON)

// Load reads, validates and builds the model stored at path.
func Load(path string) (*GradientBoosting, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}
	model, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load model artifact %s: %w", path, err)
	}
	return model, nil
}

// Parse validates raw against the artifact schema before decoding it.
func Parse(raw []byte) (*GradientBoosting, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidArtifact, err)
	}
	if err := artifactSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrInvalidArtifact, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidArtifact, err)
	}
	return New(artifact)
}
