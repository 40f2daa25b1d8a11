package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_Text(t *testing.T) {
	out, _, err := runCLI(t, "", "parse", "float[3]", "point")
	require.NoError(t, err)

	assert.Contains(t, out, "float[3]\n")
	assert.Contains(t, out, "base:         float\n")
	assert.Contains(t, out, "array:        3\n")
	assert.Contains(t, out, "size:         12 bytes\n")
	assert.Contains(t, out, "point\n")
	assert.Contains(t, out, "semantics:    point\n")
	assert.Contains(t, out, "aggregate:    vec3\n")
}

func TestParseCommand_Unsized(t *testing.T) {
	out, _, err := runCLI(t, "", "parse", "int[]")
	require.NoError(t, err)
	assert.Contains(t, out, "array:        unsized\n")
	assert.Contains(t, out, "unknown until the array length is resolved")
}

func TestParseCommand_JSON(t *testing.T) {
	out, _, err := runCLI(t, "", "parse", "--json", "point", "int[]", "  vec3:half[2]")
	require.NoError(t, err)

	var infos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)

	assert.Equal(t, "point", infos[0]["name"])
	assert.Equal(t, float64(12), infos[0]["size"])
	assert.Equal(t, float64(5), infos[0]["consumed"])

	assert.Equal(t, "int[]", infos[1]["name"])
	assert.Equal(t, float64(-1), infos[1]["arraylen"])
	assert.NotContains(t, infos[1], "size")

	assert.Equal(t, "vec3:half[2]", infos[2]["name"])
	assert.Equal(t, float64(12), infos[2]["size"])
	assert.Equal(t, float64(14), infos[2]["consumed"])
}

func TestParseCommand_Errors(t *testing.T) {
	out, errOut, err := runCLI(t, "", "parse", "flaot[3]", "int")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 type names failed to parse", err.Error())

	assert.Contains(t, errOut, "TYPE NAME TD100")
	assert.Contains(t, errOut, "Did you mean: float?")
	assert.Contains(t, out, "int\n")
}

func TestParseCommand_JSONErrors(t *testing.T) {
	out, _, err := runCLI(t, "", "parse", "-o", "json", "box2[4]")
	require.Error(t, err)

	var infos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	perr, ok := infos[0]["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TD104", perr["code"])
	assert.Equal(t, float64(0), infos[0]["consumed"])
}

func TestParseCommand_CBOR(t *testing.T) {
	out, _, err := runCLI(t, "", "parse", "-o", "cbor", "float")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^[0-9a-f]+$`, lines[0])
	assert.Contains(t, lines[1], `"name": "float"`)
	assert.Contains(t, lines[1], `"size": 4`)
}

func TestParseCommand_RequiresArgs(t *testing.T) {
	_, _, err := runCLI(t, "", "parse")
	assert.Error(t, err)
}
