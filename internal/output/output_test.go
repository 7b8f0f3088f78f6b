// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"primefact-core/factor"
	"primefact/pkg/api"
)

func writeAll(t *testing.T, format string, cfg Config, ns ...int64) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := New(format, &buf, cfg)
	require.NoError(t, err)
	for _, n := range ns {
		f, err := factor.New(n)
		require.NoError(t, err)
		require.NoError(t, w.Write(f))
	}
	require.NoError(t, w.Close())
	return buf.String()
}

func TestUnknownFormat(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{}, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"xml"`)
}

func TestTextLines(t *testing.T) {
	got := writeAll(t, "text", Config{}, 12, 17)
	require.Equal(t, "12 = 2 x 2 x 3\n17 = 17 (prime)\n", got)
}

func TestTSVHeaderOnce(t *testing.T) {
	got := writeAll(t, "tsv", Config{Header: true}, 12, 100)
	require.Equal(t,
		"value\tfactors\tprime\n12\t2 2 3\tfalse\n100\t2 2 5 5\tfalse\n", got)
}

func TestTSVNoHeader(t *testing.T) {
	got := writeAll(t, "tsv", Config{}, 17)
	require.Equal(t, "17\t17\ttrue\n", got)
}

func TestJSONArray(t *testing.T) {
	got := writeAll(t, "json", Config{Exponents: true}, 12)
	var out []api.FactorizationV1
	require.NoError(t, json.Unmarshal([]byte(got), &out))
	require.Len(t, out, 1)
	require.Equal(t, int64(12), out[0].Value)
	require.Equal(t, []int64{2, 2, 3}, out[0].Factors)
	require.Equal(t, []api.TermV1{{Prime: 2, Exponent: 2}, {Prime: 3, Exponent: 1}}, out[0].Terms)
	require.False(t, out[0].Prime)
}

func TestJSONEmptyInputIsEmptyArray(t *testing.T) {
	got := strings.TrimSpace(writeAll(t, "json", Config{}))
	require.Equal(t, "[]", got)
}

func TestJSONLStreamsPerLine(t *testing.T) {
	got := writeAll(t, "jsonl", Config{}, 2, 3)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, ln := range lines {
		var v api.FactorizationV1
		require.NoError(t, json.Unmarshal([]byte(ln), &v))
		require.True(t, v.Prime)
		require.Nil(t, v.Terms)
	}
}

func TestJSONOmitsTermsWithoutExponents(t *testing.T) {
	got := writeAll(t, "json", Config{}, 12)
	require.NotContains(t, got, `"terms"`)
}
