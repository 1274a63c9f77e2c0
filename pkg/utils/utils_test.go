package utils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovieID(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"475557", 475557, true},
		{" 42 ", 42, true},
		{"-7", -7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
		{"10.0", 10, true},
		{"1e1", 10, true},
		{"+10", 10, true},
		{"0x1A", 26, true},
		{"0b101", 5, true},
		{"010", 10, true},
		{"-0x10", 0, false},
		{"Infinity", 0, false},
		{"NaN", 0, false},
		{"1_0", 0, false},
		{"1e20", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseMovieID(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("x", 1))
	assert.Equal(t, 10, ParseInt("0", 10))
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(5, 0, 2)
	assert.Equal(t, [2]int{0, 2}, [2]int{start, end})

	start, end = PageBounds(5, 4, 2)
	assert.Equal(t, [2]int{4, 5}, [2]int{start, end})

	start, end = PageBounds(5, 10, 2)
	assert.Equal(t, [2]int{5, 5}, [2]int{start, end})

	assert.Equal(t, 3, CalculateTotalPages(5, 2))
	assert.Equal(t, 0, CalculateTotalPages(0, 2))
	assert.Equal(t, 4, CalculateOffset(3, 2))
	assert.Equal(t, 0, CalculateOffset(0, 2))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte(`[{"id":1}]`))
	assert.Len(t, a, 32)
	assert.Equal(t, a, Fingerprint([]byte(`[{"id":1}]`)))
	assert.NotEqual(t, a, Fingerprint([]byte(`[{"id":2}]`)))
}

func TestClientContext(t *testing.T) {
	ctx := context.Background()
	_, ok := GetClientIDFromContext(ctx)
	assert.False(t, ok)
	assert.False(t, IsIdentifiedClient(ctx))

	id := uuid.New()
	assert.True(t, IsIdentifiedClient(SetClientIDContext(ctx, id, false)))

	issued := SetClientIDContext(ctx, id, true)
	got, ok := GetClientIDFromContext(issued)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.False(t, IsIdentifiedClient(issued))

	_, ok = GetLocaleFromContext(ctx)
	assert.False(t, ok)
	loc, ok := GetLocaleFromContext(SetLocaleContext(ctx, "ja-JP"))
	assert.True(t, ok)
	assert.Equal(t, "ja-JP", loc)
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Name  string  `validate:"required"`
		Score float64 `validate:"gte=1,lte=10"`
		Sort  string  `validate:"omitempty,oneof=a b"`
	}

	assert.Nil(t, ValidateStruct(sample{Name: "x", Score: 5}))

	errs := ValidateStruct(sample{Score: 11, Sort: "c"})
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Must be at most 10", errs["Score"])
	assert.Equal(t, "Must be one of: a, b", errs["Sort"])
	assert.Contains(t, FormatValidationErrors(errs), "Name: This field is required")
}

func TestResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponsePaginated(rec, "success", []int{1}, map[string]int{"total_records": 1})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
	assert.Contains(t, body, "pagination")

	rec = httptest.NewRecorder()
	ResponseNotFound(rec, "Movie not found")
	assert.Equal(t, 404, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Movie not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ResponseNotModified(rec)
	assert.Equal(t, 304, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
