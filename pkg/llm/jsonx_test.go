package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONRawObject(t *testing.T) {
	v, ok := ExtractJSON(`{"components": [], "connections": []}`)
	require.True(t, ok)
	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "components")
}

func TestExtractJSONFencedBlock(t *testing.T) {
	content := "Here is the threat model:\n```json\n{\"threats\": [{\"threat_type\": \"Spoofing\"}]}\n```\nLet me know if you need more."
	v, ok := ExtractJSON(content)
	require.True(t, ok)
	obj := v.(map[string]any)
	assert.Contains(t, obj, "threats")
}

func TestExtractJSONFencedBlockWithoutTag(t *testing.T) {
	content := "```\n{\"a\": 1}\n```"
	v, ok := ExtractJSON(content)
	require.True(t, ok)
	assert.Equal(t, float64(1), v.(map[string]any)["a"])
}

func TestExtractJSONEmbeddedInProse(t *testing.T) {
	content := `The diagram shows a web app. {"components": [{"id": "web", "name": "Web App"}]} That is all.`
	v, ok := ExtractJSON(content)
	require.True(t, ok)
	obj := v.(map[string]any)
	assert.Contains(t, obj, "components")
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	// A '}' inside a string literal must not terminate the scan early.
	content := `Result: {"description": "uses {braces} and \"quotes\" freely", "ok": true} done`
	v, ok := ExtractJSON(content)
	require.True(t, ok)
	obj := v.(map[string]any)
	assert.Equal(t, true, obj["ok"])
	assert.Equal(t, `uses {braces} and "quotes" freely`, obj["description"])
}

func TestExtractJSONTopLevelArray(t *testing.T) {
	v, ok := ExtractJSON(`[{"threat_type": "Tampering"}]`)
	require.True(t, ok)
	arr, ok := v.([]any)
	require.True(t, ok)
	assert.Len(t, arr, 1)
}

func TestExtractJSONPrefersEarliestOpener(t *testing.T) {
	content := `[1, 2] and later {"a": 1}`
	v, ok := ExtractJSON(content)
	require.True(t, ok)
	_, isArray := v.([]any)
	assert.True(t, isArray)
}

func TestExtractJSONNoJSON(t *testing.T) {
	_, ok := ExtractJSON("I could not identify any architecture diagram here.")
	assert.False(t, ok)

	_, ok = ExtractJSON("")
	assert.False(t, ok)

	_, ok = ExtractJSON("unbalanced { \"a\": 1")
	assert.False(t, ok)
}

func TestParseResponseWrapsArrays(t *testing.T) {
	result := ParseResponse(`[{"threat_type": "Spoofing"}]`, "Gemini")
	require.False(t, IsErrorResult(result))
	items, ok := result["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestParseResponseEmpty(t *testing.T) {
	result := ParseResponse("   ", "Gemini")
	require.True(t, IsErrorResult(result))
	assert.Equal(t, "Empty response", result["error"])
	assert.Equal(t, "empty", result["error_type"])
	assert.Equal(t, "Gemini", result["service"])
}

func TestParseResponseInvalid(t *testing.T) {
	result := ParseResponse("not json at all", "OpenAI")
	require.True(t, IsErrorResult(result))
	assert.Equal(t, "Invalid JSON response", result["error"])
	assert.Equal(t, "invalid_json", result["error_type"])
	assert.Equal(t, "OpenAI", result["service"])
}
