// Package contact drives the lifecycle of a single contact form: field edits,
// validation, one relay call per submission, and the timed reset after a
// successful send.
package contact

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Field identifies one input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

const (
	MsgSent   = "Message sent successfully!"
	MsgFailed = "An error occurred. Please try again later."

	// RevertDelay is how long a success notice stays up before the form goes idle.
	RevertDelay = 5000 * time.Millisecond
)

var ErrUnknownField = errors.New("unknown form field")

// Loose syntactic check only, does not follow RFC 5322. The class excludes
// the same whitespace as isSpace, not just ASCII.
var emailPattern = regexp.MustCompile(`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`)

// isSpace matches browser whitespace: ASCII spaces, \v, the BOM and every
// Unicode separator. U+0085 is not included.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}

func blank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// Fields holds the current form input. Values are stored as typed.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Info is the user-facing notice. Message is nil unless the form has settled.
type Info struct {
	Error   bool    `json:"error"`
	Message *string `json:"message"`
}

// Status is the submission state. Submitted and Submitting are never both true.
type Status struct {
	Submitted  bool `json:"submitted"`
	Submitting bool `json:"submitting"`
	Info       Info `json:"info"`
}

// Relay delivers a submission to the acceptance endpoint. A nil error means
// the endpoint accepted it.
type Relay interface {
	Send(ctx context.Context, f Fields) error
}

// AfterFunc schedules f after d and returns a function that cancels it.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Observer is told how each relay call settled.
type Observer func(sent bool)

// Controller owns one form's fields and status. It is safe for concurrent
// use, but the lock is never held across a relay call.
type Controller struct {
	relay     Relay
	afterFunc AfterFunc
	observe   Observer

	mu         sync.Mutex
	fields     Fields
	status     Status
	stopRevert func() bool
	generation uint64
	closed     bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithAfterFunc replaces the timer used for the post-success reset.
func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Controller) { c.afterFunc = fn }
}

// WithObserver registers fn to run after every relay call.
func WithObserver(fn Observer) Option {
	return func(c *Controller) { c.observe = fn }
}

// NewController returns an idle controller with empty fields.
func NewController(relay Relay, opts ...Option) *Controller {
	c := &Controller{
		relay:     relay,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateField overwrites one field. No validation happens here.
func (c *Controller) UpdateField(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldName:
		c.fields.Name = value
	case FieldEmail:
		c.fields.Email = value
	case FieldMessage:
		c.fields.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Validate reports whether the current fields may be submitted.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return valid(c.fields)
}

func valid(f Fields) bool {
	return !blank(f.Name) &&
		!blank(f.Email) &&
		!blank(f.Message) &&
		emailPattern.MatchString(f.Email)
}

// Submit sends the current fields through the relay and records the outcome.
// Invalid input is rejected silently: it returns false and nothing changes.
// Nothing here stops a second concurrent call; callers must check
// Status.Submitting first.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if !valid(c.fields) {
		c.mu.Unlock()
		return false
	}
	c.cancelRevertLocked()
	c.status = Status{Submitting: true}
	snapshot := c.fields
	c.mu.Unlock()

	err := c.relay.Send(ctx, snapshot)

	// Settle
	c.mu.Lock()
	if err != nil {
		log.Printf("contact: relay failed: %v", err)
		c.status = Status{Info: Info{Error: true, Message: strPtr(MsgFailed)}}
	} else {
		c.fields = Fields{}
		c.status = Status{Submitted: true, Info: Info{Message: strPtr(MsgSent)}}
		c.armRevertLocked()
	}
	c.mu.Unlock()

	if c.observe != nil {
		c.observe(err == nil)
	}
	return true
}

func (c *Controller) armRevertLocked() {
	if c.closed {
		return
	}
	c.generation++
	gen := c.generation
	c.stopRevert = c.afterFunc(RevertDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A cancelled timer can still fire if it was already running.
		if gen != c.generation || c.closed {
			return
		}
		c.status = Status{}
		c.stopRevert = nil
	})
}

func (c *Controller) cancelRevertLocked() {
	c.generation++
	if c.stopRevert != nil {
		c.stopRevert()
		c.stopRevert = nil
	}
}

// Snapshot returns copies of the current fields and status.
func (c *Controller) Snapshot() (Fields, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.status
	if st.Info.Message != nil {
		st.Info.Message = strPtr(*st.Info.Message)
	}
	return c.fields, st
}

// Close cancels a pending reset. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelRevertLocked()
	c.closed = true
}

func strPtr(s string) *string { return &s }
