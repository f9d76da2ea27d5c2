package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	mock    pgxmock.PgxPoolIface
	out     bytes.Buffer
	logs    bytes.Buffer
	opened  int
	closed  int
	pingErr error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return &harness{mock: mock}
}

func (h *harness) open(context.Context) (*Env, error) {
	h.opened++
	return &Env{
		Repos:       repository.NewRepositories(h.mock),
		Logger:      zerolog.New(&h.logs).Level(zerolog.DebugLevel),
		Environment: "test",
		Ping:        func(context.Context) error { return h.pingErr },
		Close: func() error {
			h.closed++
			return nil
		},
	}, nil
}

func (h *harness) execute(args ...string) error {
	root := NewRootCmd(h.open, &h.out)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func propertyRow(id int64, city string, cents int64, rating any) []any {
	return []any{
		id, int64(1), "Speed lamp", "description",
		"https://example.com/thumb.jpg", "https://example.com/cover.jpg",
		cents, int32(6), int32(4), int32(8),
		"Canada", "536 Namsub Highway", city, "Quebec", "28142", true,
		rating,
	}
}

func propertyColumns() []string {
	return append(append([]string{}, query.PropertyColumns...), "average_rating")
}

func TestPropertiesSearchBindsOnlyGivenFlags(t *testing.T) {
	h := newHarness(t)

	h.mock.ExpectQuery(regexp.QuoteMeta("WHERE city LIKE $1\nAND cost_per_night <= $2")).
		WithArgs("%Vancouver%", int64(15000), 10).
		WillReturnRows(pgxmock.NewRows(propertyColumns()).
			AddRow(propertyRow(4, "Vancouver", 9300, 4.5)...))

	err := h.execute("properties", "search", "--city", "Vancouver", "--max-price", "150")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, float64(4), got[0]["id"])
	assert.Equal(t, float64(9300), got[0]["cost_per_night"])
	assert.Equal(t, 4.5, got[0]["average_rating"])
	assert.Equal(t, 1, h.closed)
	assert.Contains(t, h.logs.String(), `"command":"properties search"`)
	assert.Contains(t, h.logs.String(), `"filtered":true`)
}

func TestPropertiesSearchZeroRatingIsAFilter(t *testing.T) {
	h := newHarness(t)

	h.mock.ExpectQuery(regexp.QuoteMeta("WHERE property_reviews.rating >= $1")).
		WithArgs(float64(0), 3).
		WillReturnRows(pgxmock.NewRows(propertyColumns()))

	require.NoError(t, h.execute("properties", "search", "--min-rating", "0", "--limit", "3"))
	assert.JSONEq(t, "[]", h.out.String())
	assert.Contains(t, h.logs.String(), `"filtered":true`)
	assert.Contains(t, h.logs.String(), `"limit":3`)
}

func TestPropertiesSearchRejectsBadPriceBeforeOpening(t *testing.T) {
	h := newHarness(t)

	err := h.execute("properties", "search", "--min-price", "cheap")

	assert.True(t, errors.Is(err, errs.ErrInvalidCriteria))
	assert.Zero(t, h.opened)
}

func TestPropertiesAddFromFile(t *testing.T) {
	h := newHarness(t)

	path := filepath.Join(t.TempDir(), "property.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"owner_id": 1,
		"title": "Speed lamp",
		"description": "description",
		"thumbnail_photo_url": "https://example.com/thumb.jpg",
		"cover_photo_url": "https://example.com/cover.jpg",
		"cost_per_night": 9300,
		"street": "536 Namsub Highway",
		"city": "Sotboske",
		"province": "Quebec",
		"post_code": "28142",
		"country": "Canada",
		"parking_spaces": 6,
		"number_of_bathrooms": 4,
		"number_of_bedrooms": 8
	}`), 0o600))

	row := propertyRow(21, "Sotboske", 9300, nil)
	h.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO properties")).
		WithArgs(
			int64(1), "Speed lamp", "description",
			"https://example.com/thumb.jpg", "https://example.com/cover.jpg",
			int64(9300), "536 Namsub Highway", "Sotboske", "Quebec", "28142", "Canada",
			int32(6), int32(4), int32(8),
		).
		WillReturnRows(pgxmock.NewRows(query.PropertyColumns).AddRow(row[:len(row)-1]...))

	require.NoError(t, h.execute("properties", "add", "--file", path))

	var got map[string]any
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
	assert.Equal(t, float64(21), got["id"])
	assert.Nil(t, got["average_rating"])
}

func TestPropertiesAddRejectsUnknownFields(t *testing.T) {
	h := newHarness(t)

	path := filepath.Join(t.TempDir(), "property.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"owner": 1}`), 0o600))

	err := h.execute("properties", "add", "--file", path)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
	assert.Zero(t, h.opened)
}

func TestUsersGet(t *testing.T) {
	h := newHarness(t)

	h.mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("tristanjacobs@gmail.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow(int64(1), "Devin Sanders", "tristanjacobs@gmail.com", "$2a$10$hash"))

	require.NoError(t, h.execute("users", "get", "--email", "TristanJacobs@gmail.com"))

	assert.Contains(t, h.out.String(), `"name": "Devin Sanders"`)
	assert.NotContains(t, h.out.String(), "$2a$10$hash")
}

func TestUsersGetNeedsAKey(t *testing.T) {
	h := newHarness(t)

	err := h.execute("users", "get")
	assert.ErrorContains(t, err, "one of --email or --id is required")
	assert.Zero(t, h.opened)
}

func TestReservationsListRequiresGuest(t *testing.T) {
	h := newHarness(t)

	err := h.execute("reservations", "list")
	assert.ErrorContains(t, err, "guest-id")
	assert.Zero(t, h.opened)
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, ExitOK, ReportError(&buf, nil))

	code := ReportError(&buf, errs.ValidationError([]errs.FieldError{{Field: "minimum_rating", Error: "must be at most 5"}}))
	assert.Equal(t, ExitInvalid, code)
	assert.Contains(t, buf.String(), `"field": "minimum_rating"`)

	buf.Reset()
	assert.Equal(t, ExitNotFound, ReportError(&buf, errs.NewNotFoundError("User not found", nil)))

	buf.Reset()
	assert.Equal(t, ExitFailure, ReportError(&buf, errors.New("boom")))
	assert.Equal(t, "error: boom\n", buf.String())
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.execute("health"))

	var report map[string]any
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &report))
	assert.Equal(t, "healthy", report["status"])
	assert.Equal(t, "test", report["environment"])
}

func TestHealthFailsWhenDatabaseIsDown(t *testing.T) {
	h := newHarness(t)
	h.pingErr = errors.New("connection refused")

	err := h.execute("health")
	assert.EqualError(t, err, "database is unhealthy")
	assert.Contains(t, h.out.String(), "connection refused")
}

func TestPropertiesSearchWithoutFlags(t *testing.T) {
	h := newHarness(t)

	h.mock.ExpectQuery(regexp.QuoteMeta("GROUP BY properties.id\nORDER BY cost_per_night\nLIMIT $1;")).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(propertyColumns()))

	require.NoError(t, h.execute("properties", "search"))
	assert.Contains(t, h.logs.String(), `"filtered":false`)
}
