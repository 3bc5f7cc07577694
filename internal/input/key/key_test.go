package key

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"G", NewRuneEvent('G', ModNone)},
		{"/", NewRuneEvent('/', ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Tab", NewSpecialEvent(KeyTab, ModNone)},
		{"Esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"C-f", NewRuneEvent('f', ModCtrl)},
		{"C-A-Left", NewSpecialEvent(KeyLeft, ModCtrl|ModAlt)},
		{"F11", NewSpecialEvent(KeyF11, ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, spec := range []string{"", "X-f", "NotAKey"} {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q) should fail", spec)
		}
	}
}

func TestParseRoundTripsString(t *testing.T) {
	for _, spec := range []string{"a", "C-f", "Tab", "Space", "Esc"} {
		e := MustParse(spec)
		got, err := Parse(e.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", e.String(), err)
		}
		if !got.Equals(e) {
			t.Errorf("round trip of %q through %q = %+v", spec, e.String(), got)
		}
	}
}

func TestIsChar(t *testing.T) {
	if !NewRuneEvent('x', ModNone).IsChar() {
		t.Error("plain rune should be a char")
	}
	if NewRuneEvent('x', ModCtrl).IsChar() {
		t.Error("ctrl-modified rune should not be a char")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsChar() {
		t.Error("special key should not be a char")
	}
}
