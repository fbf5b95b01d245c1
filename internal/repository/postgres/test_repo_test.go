package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"testpro/internal/domain"
)

func TestBuildWhereClause_NoFilters(t *testing.T) {
	clause, args, next := buildWhereClause(domain.TestFilter{Limit: 20})

	assert.Empty(t, clause)
	assert.Empty(t, args)
	assert.Equal(t, 1, next)
}

func TestBuildWhereClause_AllFilters(t *testing.T) {
	clause, args, next := buildWhereClause(domain.TestFilter{
		Search:     "roma",
		Category:   "Historia",
		Difficulty: domain.DifficultyHard,
		PublicOnly: true,
	})

	assert.Equal(t,
		"WHERE (title ILIKE $1 OR description ILIKE $1) AND category = $2 AND difficulty = $3 AND is_public = TRUE",
		clause)
	assert.Equal(t, []interface{}{"%roma%", "Historia", domain.DifficultyHard}, args)
	assert.Equal(t, 4, next)
}

func TestBuildWhereClause_PublicOnly(t *testing.T) {
	clause, args, next := buildWhereClause(domain.TestFilter{PublicOnly: true})

	assert.Equal(t, "WHERE is_public = TRUE", clause)
	assert.Empty(t, args)
	assert.Equal(t, 1, next)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_x\\`, escapeLike(`100% _x\`))
}
