package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderWithoutPredicates(t *testing.T) {
	text, args := New("SELECT * FROM users").Limit(5).Build()

	assert.Equal(t, "SELECT * FROM users\nLIMIT $1;", text)
	assert.Equal(t, []any{5}, args)
}

func TestBuilderJoinsPredicatesWithWhereThenAnd(t *testing.T) {
	text, args := New("SELECT * FROM properties").
		Where("city LIKE", "%Paris%").
		Where("owner_id =", int64(3)).
		Where("cost_per_night <=", int64(9000)).
		OrderBy("cost_per_night").
		Build()

	assert.Equal(t, "SELECT * FROM properties\n"+
		"WHERE city LIKE $1\n"+
		"AND owner_id = $2\n"+
		"AND cost_per_night <= $3\n"+
		"ORDER BY cost_per_night;", text)
	assert.Equal(t, []any{"%Paris%", int64(3), int64(9000)}, args)
}

func TestBuilderBindsLimitLastWhateverTheCallOrder(t *testing.T) {
	text, args := New("SELECT * FROM properties").
		Limit(20).
		Where("owner_id =", int64(1)).
		GroupBy("properties.id").
		Build()

	assert.Equal(t, "SELECT * FROM properties\n"+
		"WHERE owner_id = $1\n"+
		"GROUP BY properties.id\n"+
		"LIMIT $2;", text)
	assert.Equal(t, []any{int64(1), 20}, args)
}

func TestBuilderBuildIsRepeatable(t *testing.T) {
	b := New("SELECT 1").Where("a =", 1).Limit(2)

	text1, args1 := b.Build()
	text2, args2 := b.Build()

	assert.Equal(t, text1, text2)
	assert.Equal(t, args1, args2)
	assert.Equal(t, []any{1, 2}, args2)
}

func TestBuilderKeepsValuesOutOfText(t *testing.T) {
	hostile := "x'; DROP TABLE users; --"
	text, args := New("SELECT * FROM properties").Where("city LIKE", hostile).Build()

	assert.NotContains(t, text, hostile)
	assert.Equal(t, []any{hostile}, args)
}
