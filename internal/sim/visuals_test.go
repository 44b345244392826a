package sim

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/jly-arcade/internal/core"
)

// token is what the recorder knows about one visual.
type token struct {
	kind      Kind
	label     string
	pos       core.Vec
	scale     float64
	alpha     float64
	tint      bool
	destroyed int
}

// recorder is a Visuals fake that remembers every call and flags misuse:
// destroying a handle twice or touching a destroyed one.
type recorder struct {
	next      Handle
	tokens    map[Handle]*token
	tintCalls int
	errs      []string
}

func newRecorder() *recorder {
	return &recorder{tokens: make(map[Handle]*token)}
}

func (r *recorder) Create(kind Kind, pos core.Vec, label string) Handle {
	r.next++
	r.tokens[r.next] = &token{kind: kind, label: label, pos: pos, scale: 1, alpha: 1}
	return r.next
}

func (r *recorder) Destroy(h Handle) {
	tok, ok := r.tokens[h]
	if !ok {
		r.errs = append(r.errs, fmt.Sprintf("destroy of unknown handle %d", h))
		return
	}
	tok.destroyed++
	if tok.destroyed > 1 {
		r.errs = append(r.errs, fmt.Sprintf("%s handle %d (%q) destroyed %d times", tok.kind, h, tok.label, tok.destroyed))
	}
}

func (r *recorder) live(h Handle, op string) *token {
	tok, ok := r.tokens[h]
	if !ok || tok.destroyed > 0 {
		r.errs = append(r.errs, fmt.Sprintf("%s on dead handle %d", op, h))
		return &token{}
	}
	return tok
}

func (r *recorder) SetPosition(h Handle, pos core.Vec) { r.live(h, "SetPosition").pos = pos }
func (r *recorder) SetScale(h Handle, scale float64)   { r.live(h, "SetScale").scale = scale }
func (r *recorder) SetAlpha(h Handle, alpha float64)   { r.live(h, "SetAlpha").alpha = alpha }

func (r *recorder) SetTint(h Handle, on bool) {
	r.tintCalls++
	r.live(h, "SetTint").tint = on
}

// count returns how many live tokens of a kind exist.
func (r *recorder) count(kind Kind) int {
	n := 0
	for _, tok := range r.tokens {
		if tok.kind == kind && tok.destroyed == 0 {
			n++
		}
	}
	return n
}

// labels returns the labels of live tokens of a kind.
func (r *recorder) labels(kind Kind) []string {
	var out []string
	for h := Handle(1); h <= r.next; h++ {
		tok := r.tokens[h]
		if tok.kind == kind && tok.destroyed == 0 {
			out = append(out, tok.label)
		}
	}
	return out
}

func (r *recorder) check(t *testing.T) {
	t.Helper()
	for _, e := range r.errs {
		t.Error(e)
	}
}
