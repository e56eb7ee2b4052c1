package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackProjectsAreStable(t *testing.T) {
	first := FallbackProjects()
	second := FallbackProjects()

	require.Len(t, first, 4)
	for i := range first {
		// IDs stay fixed across calls so detail links keep resolving
		require.Equal(t, first[i].ID, second[i].ID)
		require.Equal(t, i+1, first[i].DisplayOrder)
		require.NotEmpty(t, first[i].Category)
		require.NotEmpty(t, first[i].TagValues())
	}
}

func TestKnownSection(t *testing.T) {
	for _, section := range []string{SectionHero, SectionAbout, SectionFooter, SectionContactInfo} {
		require.True(t, KnownSection(section))
	}
	require.False(t, KnownSection("sidebar"))
	require.False(t, KnownSection(""))
}
