package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeSave_FillsNilGenres(t *testing.T) {
	v := &Venue{Name: "The Musical Hop"}
	require.NoError(t, v.BeforeSave(nil))
	assert.NotNil(t, v.Genres)
	assert.Empty(t, v.Genres)

	a := &Artist{Name: "Guns N Petals", Genres: []string{"Rock n Roll"}}
	require.NoError(t, a.BeforeSave(nil))
	assert.Equal(t, []string{"Rock n Roll"}, []string(a.Genres))
}
