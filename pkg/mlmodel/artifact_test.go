package mlmodel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nimeshabuddhika/churn-prediction-api/pkg/mlmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyArtifact = `{
  "name": "tiny",
  "version": "1",
  "algorithm": "gradient_boosting",
  "features": [
    {"name": "plan", "kind": "categorical", "categories": ["basic", "pro"]},
    {"name": "months", "kind": "numeric"}
  ],
  "init_score": 0,
  "learning_rate": 1,
  "trees": [
    {"nodes": [
      {"feature": 2, "threshold": 3, "left": 1, "right": 2},
      {"leaf": true, "value": 2},
      {"leaf": true, "value": -2}
    ]}
  ]
}`

func TestParse_Tiny(t *testing.T) {
	model, err := mlmodel.Parse([]byte(tinyArtifact))
	require.NoError(t, err)

	p, err := model.PredictProba(mlmodel.Row{{Name: "plan", Value: "pro"}, {Name: "months", Value: 1}})
	require.NoError(t, err)
	assert.InDelta(t, logistic(2), p, 1e-12)

	p, err = model.PredictProba(mlmodel.Row{{Name: "plan", Value: "basic"}, {Name: "months", Value: 10}})
	require.NoError(t, err)
	assert.InDelta(t, logistic(-2), p, 1e-12)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{"name": `},
		{name: "missing trees", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":1}`},
		{name: "wrong algorithm", doc: `{"name":"x","version":"1","algorithm":"random_forest","features":[{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":1,"trees":[{"nodes":[{"leaf":true,"value":1}]}]}`},
		{name: "categorical without categories", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"categorical"}],"init_score":0,"learning_rate":1,"trees":[{"nodes":[{"leaf":true,"value":1}]}]}`},
		{name: "zero learning rate", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":0,"trees":[{"nodes":[{"leaf":true,"value":1}]}]}`},
		{name: "split without children", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":1,"trees":[{"nodes":[{"feature":0,"threshold":1}]}]}`},
		{name: "child out of range", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":1,"trees":[{"nodes":[{"feature":0,"threshold":1,"left":1,"right":5},{"leaf":true,"value":1}]}]}`},
		{name: "feature out of range", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":1,"trees":[{"nodes":[{"feature":3,"threshold":1,"left":1,"right":2},{"leaf":true,"value":1},{"leaf":true,"value":0}]}]}`},
		{name: "back edge", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":1,"trees":[{"nodes":[{"leaf":true,"value":1},{"feature":0,"threshold":1,"left":1,"right":2},{"leaf":true,"value":0}]},{"nodes":[{"feature":0,"threshold":1,"left":2,"right":1},{"feature":0,"threshold":2,"left":1,"right":2},{"leaf":true,"value":0}]}]}`},
		{name: "duplicate feature", doc: `{"name":"x","version":"1","algorithm":"gradient_boosting","features":[{"name":"a","kind":"numeric"},{"name":"a","kind":"numeric"}],"init_score":0,"learning_rate":1,"trees":[{"nodes":[{"leaf":true,"value":1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mlmodel.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, mlmodel.ErrInvalidArtifact)
		})
	}
}

func TestLoad_Failures(t *testing.T) {
	_, err := mlmodel.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	corrupt := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("\x80\x04\x95pickle"), 0o600))
	_, err = mlmodel.Load(corrupt)
	require.Error(t, err)
	assert.ErrorIs(t, err, mlmodel.ErrInvalidArtifact)
}
