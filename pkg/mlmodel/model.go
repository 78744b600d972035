// Package mlmodel loads the offline-trained churn classifier and scores single rows with it.
package mlmodel

import (
	"errors"
	"fmt"
	"math"
)

type FeatureKind string

const (
	FeatureNumeric     FeatureKind = "numeric"
	FeatureCategorical FeatureKind = "categorical"

	AlgorithmGradientBoosting = "gradient_boosting"
)

var (
	ErrInvalidArtifact = errors.New("invalid model artifact")
	ErrBadProbability  = errors.New("model produced a probability outside [0,1]")
)

// Classifier is a binary classifier over tabular rows.
type Classifier interface {
	// PredictProba returns the estimated probability of the positive class.
	PredictProba(row Row) (float64, error)
	Info() Info
}

type Feature struct {
	Name       string      `json:"name"`
	Kind       FeatureKind `json:"kind"`
	Categories []string    `json:"categories,omitempty"`
}

type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      bool    `json:"leaf"`
	Value     float64 `json:"value"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Artifact is the serialized form of a gradient-boosted tree ensemble.
type Artifact struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Algorithm    string    `json:"algorithm"`
	Features     []Feature `json:"features"`
	InitScore    float64   `json:"init_score"`
	LearningRate float64   `json:"learning_rate"`
	Trees        []Tree    `json:"trees"`
}

// Info is the public description of a loaded model.
type Info struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Algorithm string    `json:"algorithm"`
	Trees     int       `json:"trees"`
	Width     int       `json:"encodedWidth"`
	Features  []Feature `json:"features"`
}

// GradientBoosting scores rows with a log-odds tree ensemble. It is immutable after
// New and safe for concurrent use.
type GradientBoosting struct {
	artifact Artifact
	enc      *encoder
}

// New checks the ensemble's structure and prepares it for scoring.
func New(artifact Artifact) (*GradientBoosting, error) {
	if artifact.Algorithm != AlgorithmGradientBoosting {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidArtifact, artifact.Algorithm)
	}
	if len(artifact.Features) == 0 {
		return nil, fmt.Errorf("%w: no features", ErrInvalidArtifact)
	}
	if len(artifact.Trees) == 0 {
		return nil, fmt.Errorf("%w: no trees", ErrInvalidArtifact)
	}

	seen := make(map[string]struct{}, len(artifact.Features))
	for _, f := range artifact.Features {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate feature %q", ErrInvalidArtifact, f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Kind == FeatureCategorical && len(f.Categories) == 0 {
			return nil, fmt.Errorf("%w: categorical feature %q has no categories", ErrInvalidArtifact, f.Name)
		}
	}

	enc := newEncoder(artifact.Features)
	for i, tree := range artifact.Trees {
		if err := checkTree(tree, enc.width); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", ErrInvalidArtifact, i, err)
		}
	}
	return &GradientBoosting{artifact: artifact, enc: enc}, nil
}

// checkTree requires children to sit after their parent, which rules out cycles.
func checkTree(tree Tree, width int) error {
	if len(tree.Nodes) == 0 {
		return errors.New("empty tree")
	}
	for idx, node := range tree.Nodes {
		if node.Leaf {
			continue
		}
		if node.Feature < 0 || node.Feature >= width {
			return fmt.Errorf("node %d: feature index %d out of range [0,%d)", idx, node.Feature, width)
		}
		for _, child := range []int{node.Left, node.Right} {
			if child <= idx || child >= len(tree.Nodes) {
				return fmt.Errorf("node %d: child index %d invalid", idx, child)
			}
		}
	}
	return nil
}

func (m *GradientBoosting) PredictProba(row Row) (float64, error) {
	x, err := m.enc.encode(row)
	if err != nil {
		return 0, err
	}

	score := m.artifact.InitScore
	for _, tree := range m.artifact.Trees {
		score += m.artifact.LearningRate * tree.eval(x)
	}

	p := sigmoid(score)
	if math.IsNaN(p) {
		return 0, fmt.Errorf("%w: score %v", ErrBadProbability, score)
	}
	return p, nil
}

func (m *GradientBoosting) Info() Info {
	features := make([]Feature, len(m.artifact.Features))
	copy(features, m.artifact.Features)
	return Info{
		Name:      m.artifact.Name,
		Version:   m.artifact.Version,
		Algorithm: m.artifact.Algorithm,
		Trees:     len(m.artifact.Trees),
		Width:     m.enc.width,
		Features:  features,
	}
}

func (t Tree) eval(x []float64) float64 {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Leaf {
			return node.Value
		}
		if x[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1 + ez)
}
