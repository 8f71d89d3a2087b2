package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassificationResult_Label(t *testing.T) {
	flare := ClassificationResult{IsFlare: true, Heuristic: HeuristicRays, RayCount: 2}
	require.Equal(t, "1", flare.Label())

	clean := ClassificationResult{}
	require.Equal(t, "0", clean.Label())
	require.Equal(t, HeuristicNone, clean.Heuristic)
}
