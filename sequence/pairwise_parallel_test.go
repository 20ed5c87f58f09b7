package sequence_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/sequence"
	"github.com/katalvlaran/fsmlearn/splitting"
	"github.com/stretchr/testify/require"
)

func TestSeparatingSequencesParallelMatchesSequential(t *testing.T) {
	m := buildThreeStateMealy(t)

	sequential, err := sequence.SeparatingSequences(m, splitting.Options{})
	require.NoError(t, err)

	parallel, err := sequence.SeparatingSequencesParallel(m, splitting.Options{}, 4)
	require.NoError(t, err)

	require.Equal(t, sequential, parallel)
}
