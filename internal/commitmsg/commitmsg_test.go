package commitmsg

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantSubject  string
		wantBody     string
		wantTrailers map[string]string
	}{
		{
			name:        "subject only",
			raw:         "BACKPORT: fix flash driver\n",
			wantSubject: "BACKPORT: fix flash driver",
		},
		{
			name:        "empty message",
			raw:         "",
			wantSubject: "",
		},
		{
			name:        "subject and body",
			raw:         "CHROMIUM: local hack\n\nWe need this until the board ships.\n",
			wantSubject: "CHROMIUM: local hack",
			wantBody:    "We need this until the board ships.",
		},
		{
			name: "trailers in final paragraph",
			raw: "BACKPORT: fix flash driver\n\nLong explanation here.\n\n" +
				"Signed-off-by: A Developer <dev@example.org>\nChange-Id: Iabc123\n",
			wantSubject: "BACKPORT: fix flash driver",
			wantBody:    "Long explanation here.\n\nSigned-off-by: A Developer <dev@example.org>\nChange-Id: Iabc123",
			wantTrailers: map[string]string{
				"Signed-off-by": "A Developer <dev@example.org>",
				"Change-Id":     "Iabc123",
			},
		},
		{
			name:        "trailer-like line in first paragraph is not a trailer when body continues",
			raw:         "FROMPULL: see PR\n\nUpstream-PR: 99\n\ntrailing free text without colon format here\n",
			wantSubject: "FROMPULL: see PR",
			wantBody:    "Upstream-PR: 99\n\ntrailing free text without colon format here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)

			if got.Subject != tt.wantSubject {
				t.Errorf("Subject = %q, want %q", got.Subject, tt.wantSubject)
			}
			if got.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", got.Body, tt.wantBody)
			}
			if len(got.Trailers) != len(tt.wantTrailers) {
				t.Errorf("Trailers = %v, want %v", got.Trailers, tt.wantTrailers)
			}
			for key, want := range tt.wantTrailers {
				value, ok := got.Trailer(key)
				if !ok {
					t.Errorf("Trailer(%q) missing", key)
					continue
				}
				if value != want {
					t.Errorf("Trailer(%q) = %q, want %q", key, value, want)
				}
			}
		})
	}
}

func TestParseKeepsRaw(t *testing.T) {
	raw := "BACKPORT: x\n\nbody\n"
	got := Parse(raw)

	if got.String() != raw {
		t.Errorf("String() = %q, want %q", got.String(), raw)
	}
}

func TestHasTrailer(t *testing.T) {
	msg := Parse("BACKPORT: x\n\nbody\n\nSigned-off-by: Dev <d@e.org>\n")

	if !msg.HasTrailer("Signed-off-by") {
		t.Error("HasTrailer(Signed-off-by) = false, want true")
	}
	if msg.HasTrailer("Change-Id") {
		t.Error("HasTrailer(Change-Id) = true, want false")
	}
}
