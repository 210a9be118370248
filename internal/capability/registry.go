package capability

import (
	"context"
	"fmt"
	"strings"
)

// Status describes whether a capability's preferred backend is usable.
type Status string

const (
	StatusAvailable Status = "available"
	StatusDegraded  Status = "degraded"
)

// ID identifies a capability.
type ID string

const (
	Translation   ID = "translation"
	Analysis      ID = "analysis"
	GrammarCheck  ID = "grammar_check"
	Pronunciation ID = "pronunciation"
)

// Capability is the probed state of one optional feature.
type Capability struct {
	ID     ID
	Status Status
	Reason string // human-readable cause, set when degraded
}

// Backend serves requests for a capability. Implementations return a payload
// that is opaque to the registry; callers type-switch on it.
type Backend interface {
	Serve(ctx context.Context, text string) (any, error)
	Name() string
}

// Probe attempts a lightweight initialization of a capability's primary
// backend. A nil return means the primary path is usable.
type Probe func(ctx context.Context) error

// Registration wires a capability to its probe and its two backends.
// Fallback is required: a degraded capability must still serve requests.
type Registration struct {
	ID       ID
	Probe    Probe
	Primary  Backend
	Fallback Backend
}

// Request is one user interaction: text plus the capability to serve it.
type Request struct {
	Capability ID
	Text       string
}

// Result reports which capability and mode served a request, along with the
// backend's payload.
type Result struct {
	Capability ID
	Mode       Status
	Backend    string
	Payload    any
}

// Degraded reports whether the request was served by the fallback path.
func (r Result) Degraded() bool {
	return r.Mode == StatusDegraded
}

type entry struct {
	reg Registration
	cap Capability
}

// Registry holds the probed capabilities. Probing happens once before the
// interactive loop starts; after that the registry is read-only, so dispatch
// never mutates state and runtime failures never downgrade a capability.
type Registry struct {
	entries map[ID]*entry
	order   []ID
	probed  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]*entry)}
}

// Register adds a capability. It must be called before ProbeAll.
func (r *Registry) Register(reg Registration) error {
	if r.probed {
		return fmt.Errorf("registry is sealed after probing")
	}
	if reg.ID == "" {
		return fmt.Errorf("capability ID is required")
	}
	if reg.Probe == nil {
		return fmt.Errorf("capability %s: probe is required", reg.ID)
	}
	if reg.Primary == nil || reg.Fallback == nil {
		return fmt.Errorf("capability %s: primary and fallback backends are required", reg.ID)
	}
	if _, exists := r.entries[reg.ID]; exists {
		return fmt.Errorf("capability %s already registered", reg.ID)
	}
	r.entries[reg.ID] = &entry{
		reg: reg,
		cap: Capability{ID: reg.ID, Status: StatusDegraded, Reason: "not probed"},
	}
	r.order = append(r.order, reg.ID)
	return nil
}

// Probe runs the capability's probe and records the outcome. Probe failures
// are captured into the returned Capability, never raised: a failed probe
// means degraded, not broken.
func (r *Registry) Probe(ctx context.Context, id ID) (Capability, error) {
	e, ok := r.entries[id]
	if !ok {
		return Capability{}, &InputError{Msg: fmt.Sprintf("unknown capability %q", id)}
	}
	if err := e.reg.Probe(ctx); err != nil {
		e.cap = Capability{ID: id, Status: StatusDegraded, Reason: (&InitError{Capability: id, Err: err}).Error()}
	} else {
		e.cap = Capability{ID: id, Status: StatusAvailable}
	}
	return e.cap, nil
}

// ProbeAll probes every registered capability in registration order and
// returns the results. It is called once at startup.
func (r *Registry) ProbeAll(ctx context.Context) []Capability {
	caps := make([]Capability, 0, len(r.order))
	for _, id := range r.order {
		c, _ := r.Probe(ctx, id)
		caps = append(caps, c)
	}
	r.probed = true
	return caps
}

// Lookup returns the probed state of a capability.
func (r *Registry) Lookup(id ID) (Capability, bool) {
	e, ok := r.entries[id]
	if !ok {
		return Capability{}, false
	}
	return e.cap, true
}

// Capabilities returns all capabilities in registration order.
func (r *Registry) Capabilities() []Capability {
	caps := make([]Capability, 0, len(r.order))
	for _, id := range r.order {
		caps = append(caps, r.entries[id].cap)
	}
	return caps
}

// Dispatch routes a request to the primary backend when the capability is
// available and to the fallback when it is degraded. Backend call failures
// come back as *BackendError; they are per-request and leave the capability's
// status untouched, so the next request attempts the same path again.
func (r *Registry) Dispatch(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Result{}, &InputError{Msg: "text must not be empty"}
	}
	e, ok := r.entries[req.Capability]
	if !ok {
		return Result{}, &InputError{Msg: fmt.Sprintf("unknown capability %q", req.Capability)}
	}

	backend := e.reg.Primary
	if e.cap.Status == StatusDegraded {
		backend = e.reg.Fallback
	}

	payload, err := backend.Serve(ctx, req.Text)
	if err != nil {
		return Result{}, &BackendError{Capability: req.Capability, Backend: backend.Name(), Err: err}
	}

	return Result{
		Capability: req.Capability,
		Mode:       e.cap.Status,
		Backend:    backend.Name(),
		Payload:    payload,
	}, nil
}
