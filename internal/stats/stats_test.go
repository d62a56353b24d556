package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanOfEmptySlice(t *testing.T) {
	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 0, RoundMean(nil))
}

func TestRoundMean(t *testing.T) {
	require.Equal(t, 45000, RoundMean([]float64{40000, 50000}))
	require.Equal(t, 45001, RoundMean([]float64{40000, 50001}))
}

func TestRound1HalvesAwayFromZero(t *testing.T) {
	require.Equal(t, 4.3, Round1(4.25))
	require.Equal(t, -4.3, Round1(-4.25))
	require.Equal(t, 4.3, Round1(4.3333))
	require.Equal(t, 4.5, Round1(4.5))
}
