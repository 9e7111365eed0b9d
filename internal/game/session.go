// internal/game/session.go
//
// Session state machine for a single code-breaking game.
// Responsibilities:
//   - Create new sessions with deterministic dimensions (default 4 pegs,
//     10 attempts) and a freshly generated secret.
//   - Apply validated guesses: score, record history, advance state.
//   - Track state transitions: in_progress → won/lost/abandoned.
//
// Notes:
//   - The session exclusively owns its secret and history; scoring itself
//     lives in score.go and is pure.
//   - Submitting to a finished session is a caller contract breach and
//     panics; callers check State() first (the HTTP layer returns 409).
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

// State is the lifecycle phase of a session.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
	StateAbandoned  State = "abandoned"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s != StateInProgress }

// Attempt is one history entry: the guess as submitted (post-validation)
// and the feedback it earned.
type Attempt struct {
	Guess    Code     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Config parameterizes a new session. Zero values fall back to the
// standard game: 4-symbol codes over the six-color alphabet, 10 attempts.
type Config struct {
	CodeLength  int
	Alphabet    Alphabet
	MaxAttempts int

	// Rand is the session-scoped entropy source; nil means time-seeded.
	Rand *mrand.Rand

	// Secret fixes the answer instead of generating one (testing).
	// Must match CodeLength when set.
	Secret Code
}

// Session holds the state of one game, from secret generation to a
// terminal state. Not safe for concurrent use; each session has a single
// owner.
type Session struct {
	ID string

	secret      Code
	alphabet    Alphabet
	maxAttempts int
	attempts    int
	history     []Attempt
	state       State
}

// NewSession constructs a session, generating a secret unless cfg.Secret
// is set.
func NewSession(cfg Config) *Session {
	if cfg.CodeLength == 0 {
		cfg.CodeLength = DefaultCodeLength
	}
	if len(cfg.Alphabet) == 0 {
		cfg.Alphabet = Colors()
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	secret := cfg.Secret
	if len(secret) == 0 {
		r := cfg.Rand
		if r == nil {
			r = NewRand()
		}
		secret = Generate(r, cfg.CodeLength, cfg.Alphabet)
	} else if len(secret) != cfg.CodeLength {
		panic("game: fixed secret length does not match code length")
	}
	return &Session{
		ID:          randomID(),
		secret:      secret,
		alphabet:    cfg.Alphabet,
		maxAttempts: cfg.MaxAttempts,
		state:       StateInProgress,
		history:     []Attempt{},
	}
}

// Submit applies a validated guess, mutating the session.
// Returns the feedback and the state after the transition.
//
// State transitions:
//   - If every position matches → won.
//   - Else if the attempt budget is spent → lost.
//   - Else the session stays in progress.
//
// Calling Submit on a terminal session panics: start a new session instead.
func (s *Session) Submit(guess Code) (Feedback, State) {
	if s.state.Terminal() {
		panic("game: Submit on a finished session")
	}
	s.attempts++
	fb := Score(s.secret, guess)
	s.history = append(s.history, Attempt{Guess: guess, Feedback: fb})

	if fb.Exact == len(s.secret) {
		s.state = StateWon
	} else if s.attempts >= s.maxAttempts {
		s.state = StateLost
	}
	return fb, s.state
}

// SubmitRaw validates raw input and applies it. On a validation error the
// session is untouched: no attempt is consumed, no history is recorded.
func (s *Session) SubmitRaw(raw string) (Feedback, State, error) {
	guess, err := ParseGuess(raw, len(s.secret), s.alphabet)
	if err != nil {
		return Feedback{}, s.state, err
	}
	fb, st := s.Submit(guess)
	return fb, st, nil
}

// Abandon ends an in-progress session without a win/loss outcome and
// returns the secret for reveal. Panics if the session is already
// terminal.
func (s *Session) Abandon() Code {
	if s.state.Terminal() {
		panic("game: Abandon on a finished session")
	}
	s.state = StateAbandoned
	return s.secret
}

// Reveal returns the secret once the session is terminal. Revealing a
// live secret is a contract breach and panics.
func (s *Session) Reveal() Code {
	if !s.state.Terminal() {
		panic("game: Reveal on an in-progress session")
	}
	return s.secret
}

// State reports the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Attempts reports how many guesses have been consumed.
func (s *Session) Attempts() int { return s.attempts }

// AttemptsLeft reports the remaining guess budget.
func (s *Session) AttemptsLeft() int { return s.maxAttempts - s.attempts }

// CodeLength reports the configured secret length.
func (s *Session) CodeLength() int { return len(s.secret) }

// Alphabet reports the configured symbol set.
func (s *Session) Alphabet() Alphabet { return s.alphabet }

// History returns the ordered transcript of attempts so far. The slice is
// a copy; callers cannot mutate session state through it.
func (s *Session) History() []Attempt {
	out := make([]Attempt, len(s.history))
	copy(out, s.history)
	return out
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
