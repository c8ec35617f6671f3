package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRankings_PlainJSON(t *testing.T) {
	doc, err := extractRankings(`{"rankings":[{"vehicleId":"v-1","score":90,"explanation":"ok","matchedCriteria":[]}]}`)
	require.NoError(t, err)
	require.Len(t, doc.Rankings, 1)
	assert.Equal(t, "v-1", doc.Rankings[0].VehicleID)
}

func TestExtractRankings_CodeFencedWithChatter(t *testing.T) {
	raw := "Here are the rankings you asked for:\n```json\n" +
		`{"rankings":[{"vehicleId":"v-2","score":75,"explanation":"decent","matchedCriteria":["5 seats"]}]}` +
		"\n```\nLet me know if you need anything else."

	doc, err := extractRankings(raw)
	require.NoError(t, err)
	require.Len(t, doc.Rankings, 1)
	assert.Equal(t, "v-2", doc.Rankings[0].VehicleID)
}

func TestExtractRankings_BracesInsideStrings(t *testing.T) {
	raw := `{"rankings":[{"vehicleId":"v-1","score":60,"explanation":"value is {braced}","matchedCriteria":[]}]}`

	doc, err := extractRankings(raw)
	require.NoError(t, err)
	assert.Equal(t, "value is {braced}", doc.Rankings[0].Explanation)
}

func TestExtractRankings_NoJSON(t *testing.T) {
	_, err := extractRankings("sorry, I can't help with that")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractRankings_TruncatedJSON(t *testing.T) {
	_, err := extractRankings(`{"rankings":[{"vehicleId":"v-1"`)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
