package repository

import (
	"regexp"
	"testing"

	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock
}

func sqlLike(s string) string {
	return regexp.QuoteMeta(s)
}

func propertyColumns() []string {
	return append(append([]string{}, query.PropertyColumns...), "average_rating")
}

// propertyValues is one properties row in query.PropertyColumns order.
func propertyValues(id int64, city string, cents int64) []any {
	return []any{
		id,
		int64(1),
		"Speed lamp",
		"description",
		"https://images.pexels.com/photos/2086676/thumb.jpeg",
		"https://images.pexels.com/photos/2086676/cover.jpeg",
		cents,
		int32(6),
		int32(4),
		int32(8),
		"Canada",
		"536 Namsub Highway",
		city,
		"Quebec",
		"28142",
		true,
	}
}
