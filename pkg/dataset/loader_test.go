package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "reviews.json", `[
		{"review": "Amazing film", "sentiment": "Positive"},
		{"review": "Terrible, a waste", "sentiment": "Negative"}
	]`)

	examples, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, examples, 2)
	require.Equal(t, "Amazing film", examples[0].Input)
	require.Equal(t, "Positive", examples[0].Label)
	require.Equal(t, "Negative", examples[1].Label)
}

func TestLoadJSONL(t *testing.T) {
	path := writeFile(t, "reviews.jsonl",
		`{"review":"great","sentiment":"Positive"}
{"review":"awful","sentiment":"Negative"}
`)

	examples, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, examples, 2)
	require.Equal(t, "awful", examples[1].Input)
}

func TestLoadPreservesOrder(t *testing.T) {
	path := writeFile(t, "reviews.json", `[
		{"review": "r1", "sentiment": "A"},
		{"review": "r2", "sentiment": "B"},
		{"review": "r3", "sentiment": "C"}
	]`)

	examples, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, []string{examples[0].Label, examples[1].Label, examples[2].Label})
}

func TestLoadCustomFields(t *testing.T) {
	path := writeFile(t, "data.json", `[{"text": "hello", "category": "Greeting"}]`)

	examples, err := Load(path, LoadOptions{InputField: "text", LabelField: "category"})
	require.NoError(t, err)
	require.Equal(t, "hello", examples[0].Input)
	require.Equal(t, "Greeting", examples[0].Label)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), LoadOptions{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMissingFieldFailsWholeLoad(t *testing.T) {
	path := writeFile(t, "reviews.json", `[
		{"review": "fine", "sentiment": "Positive"},
		{"review": "no label here"}
	]`)

	_, err := Load(path, LoadOptions{})
	require.ErrorIs(t, err, ErrMalformed)

	var recordErr *MalformedRecordError
	require.ErrorAs(t, err, &recordErr)
	require.Equal(t, 1, recordErr.Record)
}

func TestLoadNonStringField(t *testing.T) {
	path := writeFile(t, "reviews.json", `[{"review": "ok", "sentiment": 3}]`)

	_, err := Load(path, LoadOptions{})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLoadEmptyInput(t *testing.T) {
	path := writeFile(t, "reviews.json", `[{"review": "", "sentiment": "Positive"}]`)

	_, err := Load(path, LoadOptions{})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLoadNotACollection(t *testing.T) {
	path := writeFile(t, "reviews.json", `"just a string"`)

	_, err := Load(path, LoadOptions{})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLoadSniffsFormatWithoutExtension(t *testing.T) {
	path := writeFile(t, "reviews", `[{"review": "x", "sentiment": "Y"}]`)

	examples, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, examples, 1)
}

func TestLoadBadJSONLLine(t *testing.T) {
	path := writeFile(t, "reviews.jsonl",
		`{"review":"ok","sentiment":"Positive"}
not json
`)

	_, err := Load(path, LoadOptions{})
	require.ErrorIs(t, err, ErrMalformed)
}
