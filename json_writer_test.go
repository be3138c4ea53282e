package papertrade

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	testCases := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "keeps insertion order",
			build: func(w *jsonObjectWriter) {
				w.Append("security", "TSLA")
				w.Append("command", "sell")
			},
			want: `{"security":"TSLA","command":"sell"}`,
		},
		{
			name: "embed raw object",
			build: func(w *jsonObjectWriter) {
				w.Append("command", "deposit")
				w.Embed(json.RawMessage(` { "amount":10, "currency":"USD" } `))
				w.Append("n", 1)
			},
			want: `{"command":"deposit","amount":10, "currency":"USD","n":1}`,
		},
		{
			name: "embed empty object",
			build: func(w *jsonObjectWriter) {
				w.Embed([]byte(`{}`))
				w.Append("a", 1)
			},
			want: `{"a":1}`,
		},
		{
			name: "optional fields",
			build: func(w *jsonObjectWriter) {
				w.Append("quantity", 0) // a zero value is kept by Append.
				w.Optional("currency", "")
				w.Optional("price", 0)
				w.Optional("security", "AAPL")
			},
			want: `{"quantity":0,"security":"AAPL"}`,
		},
		{
			name: "embed money",
			build: func(w *jsonObjectWriter) {
				w.Append("command", "withdraw")
				w.EmbedFrom(USD(99.999))
			},
			want: `{"command":"withdraw","amount":100,"currency":"USD"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestJsonObjectWriter_StickyError(t *testing.T) {
	var w jsonObjectWriter
	w.Embed([]byte(`[1,2]`))
	w.Append("a", 1)
	if _, err := w.MarshalJSON(); err == nil {
		t.Errorf("embedding an array did not fail")
	}

	var w2 jsonObjectWriter
	w2.Append("f", func() {})
	if _, err := w2.MarshalJSON(); err == nil {
		t.Errorf("appending a func did not fail")
	}
}
