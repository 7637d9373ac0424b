package briefing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cquiroga/briefing-wizard/model"
	"github.com/cquiroga/briefing-wizard/validate"
)

var (
	ErrSubmitInFlight   = errors.New("submit already in flight")
	ErrAlreadySubmitted = errors.New("form already submitted")
)

type Kind int

const (
	KindText Kind = iota
	KindList
	KindFlag
)

// Value is the tagged union a form field can hold: free text, a multi-select
// list, or a checkbox flag. Which variant is legal for a field is decided by
// its configuration and enforced when the payload is built.
type Value struct {
	Kind Kind
	Text string
	List []string
	Flag bool
}

func Text(s string) Value     { return Value{Kind: KindText, Text: s} }
func List(vs ...string) Value { return Value{Kind: KindList, List: vs} }
func Flag(b bool) Value       { return Value{Kind: KindFlag, Flag: b} }

func (v Value) Empty() bool {
	switch v.Kind {
	case KindText:
		return v.Text == ""
	case KindList:
		return len(v.List) == 0
	default:
		return false
	}
}

// raw returns the JSON-facing representation.
func (v Value) raw() any {
	switch v.Kind {
	case KindList:
		return v.List
	case KindFlag:
		return v.Flag
	default:
		return v.Text
	}
}

// Poster delivers a finished payload to the submission endpoint. A non-2xx
// response must come back as an error.
type Poster interface {
	Post(ctx context.Context, payload model.SubmissionPayload) error
}

// FormState is the per-session state machine behind the briefing wizard:
// a step cursor bounded to the configuration, a flat field-id -> value map,
// and the submit flags.
type FormState struct {
	mu         sync.Mutex
	cfg        *Config
	step       int
	values     map[string]Value
	submitting bool
	submitted  bool
}

func NewFormState(cfg *Config) *FormState {
	return &FormState{cfg: cfg, values: map[string]Value{}}
}

func (f *FormState) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *FormState) TotalSteps() int {
	return len(f.cfg.Steps)
}

func (f *FormState) Next() { f.GoTo(f.Step() + 1) }
func (f *FormState) Prev() { f.GoTo(f.Step() - 1) }

// GoTo clamps to [0, steps-1], so the engine has no illegal transitions.
func (f *FormState) GoTo(step int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if step < 0 {
		step = 0
	}
	if max := len(f.cfg.Steps) - 1; step > max {
		step = max
	}
	f.step = step
}

// UpdateField overwrites any previous value for the field id. No history.
func (f *FormState) UpdateField(id string, v Value) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[id] = v
}

func (f *FormState) Field(id string) (Value, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[id]
	return v, ok
}

// ValuesMap exposes the flat value map in its JSON-facing shape, for
// consumers like the pricing engine.
func (f *FormState) ValuesMap() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]any, len(f.values))
	for id, v := range f.values {
		out[id] = v.raw()
	}
	return out
}

// IsStepValid reports whether every required field of the step holds a
// non-empty value. Validity is exposed, not enforced: navigation is never
// blocked here, gating is the caller's call.
func (f *FormState) IsStepValid(step int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if step < 0 || step >= len(f.cfg.Steps) {
		return false
	}
	for _, fld := range f.cfg.Steps[step].Fields {
		if !fld.Required {
			continue
		}
		v, ok := f.values[fld.ID]
		if !ok || v.Empty() {
			return false
		}
	}
	return true
}

// FieldError runs the shared format validators against a field's current
// value, mirroring the inline errors the wizard shows.
func (f *FormState) FieldError(id string) error {
	fld, ok := f.cfg.FieldByID(id)
	if !ok {
		return nil
	}
	v, ok := f.Field(id)
	if !ok || v.Kind != KindText {
		return nil
	}
	return validate.Field(fld.Type, v.Text)
}

// BuildPayload regroups the flat value map into the four data-group buckets.
// It rejects values whose variant does not match the field's declared type.
func (f *FormState) BuildPayload() (model.SubmissionPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := model.SubmissionPayload{
		Type:        string(f.cfg.Type),
		ClientName:  "Sin nombre",
		ContactData: map[string]any{},
		ContentData: map[string]any{},
		DesignData:  map[string]any{},
		ExtraData:   map[string]any{},
	}
	if v, ok := f.values["clientName"]; ok && v.Kind == KindText && v.Text != "" {
		p.ClientName = v.Text
	}
	if v, ok := f.values["email"]; ok && v.Kind == KindText {
		p.ClientEmail = v.Text
	}

	for _, s := range f.cfg.Steps {
		for _, fld := range s.Fields {
			v, ok := f.values[fld.ID]
			if !ok {
				continue
			}
			if err := checkKind(fld, v); err != nil {
				return model.SubmissionPayload{}, err
			}
			bucket := p.ContactData
			switch fld.Group {
			case GroupContent:
				bucket = p.ContentData
			case GroupDesign:
				bucket = p.DesignData
			case GroupExtra:
				bucket = p.ExtraData
			}
			bucket[fld.ID] = v.raw()
		}
	}
	return p, nil
}

func checkKind(fld Field, v Value) error {
	want := KindText
	switch fld.Type {
	case "multiselect":
		want = KindList
	case "checkbox":
		want = KindFlag
	}
	if v.Kind != want {
		return fmt.Errorf("field %s: value kind does not match field type %s", fld.ID, fld.Type)
	}
	return nil
}

// Submit builds the payload and delivers it through post. A second call while
// one is in flight is rejected with ErrSubmitInFlight; after a successful
// submit the form is done and further calls return ErrAlreadySubmitted. A
// failed delivery leaves the form open for retry.
func (f *FormState) Submit(ctx context.Context, post Poster) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if f.submitted {
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}
	f.submitting = true
	f.mu.Unlock()

	payload, err := f.BuildPayload()
	if err == nil {
		err = post.Post(ctx, payload)
	}

	f.mu.Lock()
	f.submitting = false
	if err == nil {
		f.submitted = true
	}
	f.mu.Unlock()
	return err
}

func (f *FormState) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *FormState) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}
