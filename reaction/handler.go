package reaction

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -package=reaction -destination=handler_mock.go

// Handler reacts to an emotional stimulus
type Handler interface {
	React()
}

// CheerfulHandler reacts happily
type CheerfulHandler struct {
	out io.Writer
}

func NewCheerfulHandler(out io.Writer) *CheerfulHandler {
	return &CheerfulHandler{out: out}
}

func (h *CheerfulHandler) React() {
	say(h.out, h, "Yay")
}

// SorrowfulHandler reacts sadly
type SorrowfulHandler struct {
	out io.Writer
}

func NewSorrowfulHandler(out io.Writer) *SorrowfulHandler {
	return &SorrowfulHandler{out: out}
}

func (h *SorrowfulHandler) React() {
	say(h.out, h, "Boo!")
}

// Providers for an ice.MagicBag, which keys on the exact result type.
func MakeCheerfulHandler(out io.Writer) Handler  { return NewCheerfulHandler(out) }
func MakeSorrowfulHandler(out io.Writer) Handler { return NewSorrowfulHandler(out) }

// say writes "<handler type> - <what>", e.g. "reaction.CheerfulHandler - Yay"
func say(out io.Writer, h Handler, what string) {
	name := strings.TrimPrefix(fmt.Sprintf("%T", h), "*")
	if _, err := fmt.Fprintf(out, "%s - %s\n", name, what); err != nil {
		log.Warnf("%s couldn't react: %v", name, err)
	}
}
