package frontend

import "sync/atomic"

// Token identifies one holiday-lookup generation. Tokens are compared,
// never reused.
type Token int64

// Coordinator issues strictly increasing tokens so that only the most
// recently started lookup's result is ever applied. The latest token is
// explicit instance state owned here, not a process-wide singleton.
type Coordinator struct {
	latest int64
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Issue returns a token strictly greater than any previously issued one.
func (c *Coordinator) Issue() Token {
	return Token(atomic.AddInt64(&c.latest, 1))
}

// Current reports whether token is still the latest issued one. A stale
// token means the lookup it belongs to has been superseded and its result
// must be discarded.
func (c *Coordinator) Current(token Token) bool {
	return atomic.LoadInt64(&c.latest) == int64(token)
}
