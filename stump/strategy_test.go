package stump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStrategy(t *testing.T) {
	s, err := SelectStrategy(1)
	require.NoError(t, err)
	assert.Equal(t, "regression", s.Name)
	assert.Equal(t, UpdateNormal, s.Predictor.UpdateRule())

	w, err := s.NewAccumulator(1)
	require.NoError(t, err)
	assert.Equal(t, 1, w.LabelCount())

	_, err = SelectStrategy(2)
	assert.Error(t, err, "multiclass label counts have no strategy here")
	_, err = SelectStrategy(0)
	assert.Error(t, err)
}
