package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCleanPayload(t *testing.T) {
	result := JSON(`{"slides":[{"title":"Intro","summary":"Welcome"}]}`)

	require.True(t, result.OK)
	assert.Equal(t, `{"slides":[{"title":"Intro","summary":"Welcome"}]}`, result.Payload)
}

func TestJSONFencedPayload(t *testing.T) {
	text := "Here is your outline:\n```json\n{\"slides\":[{\"title\":\"Intro\"}]}\n```\nHope this helps!"

	result := JSON(text)

	require.True(t, result.OK)
	assert.Equal(t, `{"slides":[{"title":"Intro"}]}`, result.Payload)
}

func TestJSONGenericFence(t *testing.T) {
	text := "```\n{\"a\": 1}\n```"

	result := JSON(text)

	require.True(t, result.OK)
	assert.Equal(t, `{"a": 1}`, result.Payload)
}

func TestJSONWrappedInProse(t *testing.T) {
	text := `Sure! The data you asked for is {"a": [1, 2, 3]} and that concludes my answer.`

	result := JSON(text)

	require.True(t, result.OK)
	assert.Equal(t, `{"a": [1, 2, 3]}`, result.Payload)
}

func TestJSONRepairsTruncatedArray(t *testing.T) {
	result := JSON(`{"slides":[{"title":"A"},{"title":"B"`)

	require.True(t, result.OK)
	assert.Equal(t, `{"slides":[{"title":"A"},{"title":"B"}]}`, result.Payload)
}

func TestJSONRepairsUnterminatedString(t *testing.T) {
	result := JSON(`{"title":"Intro to Tes`)

	require.True(t, result.OK)
	assert.Equal(t, `{"title":"Intro to Tes"}`, result.Payload)
}

func TestJSONRepairsTrailingComma(t *testing.T) {
	result := JSON(`{"a": 1,`)

	require.True(t, result.OK)
	assert.Equal(t, `{"a": 1}`, result.Payload)
}

func TestJSONFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"whitespace only", "   \n\t"},
		{"no object at all", "I cannot help with that request."},
		{"irreparable payload", `{"a": nope}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := JSON(tt.text)

			assert.False(t, result.OK)
			assert.NotEmpty(t, result.Reason)
		})
	}
}

func TestResultDecode(t *testing.T) {
	result := JSON(`{"bullet_points":["one","two"],"supporting_text":"more"}`)
	require.True(t, result.OK)

	var payload struct {
		Bullets []string `json:"bullet_points"`
		Support string   `json:"supporting_text"`
	}
	require.NoError(t, result.Decode(&payload))
	assert.Equal(t, []string{"one", "two"}, payload.Bullets)
	assert.Equal(t, "more", payload.Support)
}

func TestJSONPreservesLogicalContent(t *testing.T) {
	clean := `{"slides":[{"title":"T1","summary":"S1"},{"title":"T2","summary":"S2"}]}`
	noisy := "The outline you requested:\n\n```json\n" + clean + "\n```\n\nLet me know if you need changes."

	cleanResult := JSON(clean)
	noisyResult := JSON(noisy)

	require.True(t, cleanResult.OK)
	require.True(t, noisyResult.OK)
	assert.JSONEq(t, cleanResult.Payload, noisyResult.Payload)
}
