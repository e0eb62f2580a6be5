package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-parser/domain"
)

func quotes(commands ...string) []domain.Quote {
	out := make([]domain.Quote, len(commands))
	for i, c := range commands {
		out[i] = domain.Quote{ID: c, Command: c}
	}
	return out
}

func ids(qs []domain.Quote) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestQuoteRepositoryMemory_RecentNewestFirst(t *testing.T) {
	repo := NewQuoteRepositoryMemory(10)
	for _, q := range quotes("a", "b", "c") {
		require.NoError(t, repo.Save(q))
	}

	got, err := repo.Recent(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, ids(got))

	got, err = repo.Recent(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(got))
}

func TestQuoteRepositoryMemory_DropsOldest(t *testing.T) {
	repo := NewQuoteRepositoryMemory(2)
	for _, q := range quotes("a", "b", "c", "d") {
		require.NoError(t, repo.Save(q))
	}

	got, err := repo.Recent(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, ids(got))
}

func TestQuoteRepositoryMemory_Empty(t *testing.T) {
	repo := NewQuoteRepositoryMemory(5)

	got, err := repo.Recent(3)
	require.NoError(t, err)
	assert.Empty(t, got)
}
