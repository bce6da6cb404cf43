package reaction

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandlers(t *testing.T) {
	tests := []struct {
		make     func(*bytes.Buffer) Handler
		expected string
	}{
		{func(b *bytes.Buffer) Handler { return NewCheerfulHandler(b) }, "reaction.CheerfulHandler - Yay\n"},
		{func(b *bytes.Buffer) Handler { return NewSorrowfulHandler(b) }, "reaction.SorrowfulHandler - Boo!\n"},
		{func(b *bytes.Buffer) Handler { return MakeCheerfulHandler(b) }, "reaction.CheerfulHandler - Yay\n"},
		{func(b *bytes.Buffer) Handler { return MakeSorrowfulHandler(b) }, "reaction.SorrowfulHandler - Boo!\n"},
	}
	for _, test := range tests {
		var out bytes.Buffer
		test.make(&out).React()
		if out.String() != test.expected {
			t.Fatalf("expected %q; was %q", test.expected, out.String())
		}
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHandlerWriteError(t *testing.T) {
	// nothing to return, so just make sure this doesn't blow up
	NewCheerfulHandler(brokenWriter{}).React()
	NewSorrowfulHandler(brokenWriter{}).React()
}

func TestMoods(t *testing.T) {
	if Sad.String() != "Sad" || Happy.String() != "Happy" {
		t.Fatalf("unexpected mood names %v %v", Sad, Happy)
	}
	if Sad.Word() != "Boo!" || Happy.Word() != "Yay" {
		t.Fatalf("unexpected mood words %v %v", Sad.Word(), Happy.Word())
	}
	if Mood(0).String() != "Mood(0)" || Mood(0).Word() != "" {
		t.Fatalf("unexpected zero mood %v %q", Mood(0), Mood(0).Word())
	}
}
