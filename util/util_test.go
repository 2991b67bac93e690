package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello"},
		{"multi-byte kept intact", "제주도 여행", 3, "제주도"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestSetResponse(t *testing.T) {
	resp := SetResponse(map[string]bool{"ok": true}, 1, "done")
	if resp["status"] != 1 || resp["message"] != "done" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp["data"] == nil {
		t.Error("data must be carried through")
	}

	empty := SetResponse(nil, 0, "failed")
	if empty["data"] != nil {
		t.Errorf("nil data must stay nil, got %+v", empty["data"])
	}
}
