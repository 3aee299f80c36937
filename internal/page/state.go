// Package page models the lifecycle of the dashboard's pages. Fetch pages
// move Idle → Loading → Ready | Failed; form pages move Idle → Submitting
// → Succeeded | Failed. A failed fetch keeps whatever data arrived first.
package page

type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// State is a fetch page's view state.
type State[T any] struct {
	Phase Phase
	Data  T
	Err   error
}

func NewLoading[T any]() State[T] {
	return State[T]{Phase: Loading}
}

// Resolve finishes a fetch. On error the partial data is kept.
func (s State[T]) Resolve(data T, err error) State[T] {
	if err != nil {
		return State[T]{Phase: Failed, Data: data, Err: err}
	}
	return State[T]{Phase: Ready, Data: data}
}

func (s State[T]) Loading() bool { return s.Phase == Loading }

// Settled reports whether the page is past loading, successful or not.
func (s State[T]) Settled() bool { return s.Phase == Ready || s.Phase == Failed }

type FormPhase int

const (
	FormIdle FormPhase = iota
	FormSubmitting
	FormSucceeded
	FormFailed
)

func (p FormPhase) String() string {
	switch p {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "succeeded"
	case FormFailed:
		return "failed"
	}
	return "unknown"
}

// Form is a form page's state. Values are echoed back into the inputs
// when the form is re-rendered after a failure.
type Form[T any] struct {
	Phase  FormPhase
	Values T
	Err    error
}

func NewForm[T any](values T) Form[T] {
	return Form[T]{Phase: FormIdle, Values: values}
}

func (f Form[T]) Submit() Form[T] {
	return Form[T]{Phase: FormSubmitting, Values: f.Values}
}

// Finish settles a submission. The entered values always survive.
func (f Form[T]) Finish(err error) Form[T] {
	if err != nil {
		return Form[T]{Phase: FormFailed, Values: f.Values, Err: err}
	}
	return Form[T]{Phase: FormSucceeded, Values: f.Values}
}

func (f Form[T]) Editable() bool { return f.Phase != FormSubmitting }
