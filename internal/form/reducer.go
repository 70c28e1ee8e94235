package form

import "maps"

// Event is an input to Reduce
type Event interface {
	isEvent()
}

// FieldChanged records a user edit and clears that field's error
type FieldChanged struct {
	Field string
	Value string
}

// ValidationFailed replaces the field errors; nothing was submitted
type ValidationFailed struct {
	Errors map[string]string
}

// SubmitStarted marks the record as in flight
type SubmitStarted struct{}

// SubmitSucceeded resets the form after the record was persisted
type SubmitSucceeded struct {
	EntityID string
}

// SubmitFailed keeps the entered values and shows a dismissible notice
type SubmitFailed struct {
	Message string
}

// ListSyncFailed means the record was persisted but adding it to the list failed
type ListSyncFailed struct {
	EntityID string
	Message  string
}

// NoticeDismissed clears the current notice
type NoticeDismissed struct{}

func (FieldChanged) isEvent()     {}
func (ValidationFailed) isEvent() {}
func (SubmitStarted) isEvent()    {}
func (SubmitSucceeded) isEvent()  {}
func (SubmitFailed) isEvent()     {}
func (ListSyncFailed) isEvent()   {}
func (NoticeDismissed) isEvent()  {}

// Reduce returns the state that follows s after e. s is never modified.
func Reduce(s State, e Event) State {
	next := s.clone()

	switch ev := e.(type) {
	case FieldChanged:
		next.Values[ev.Field] = ev.Value
		delete(next.Errors, ev.Field)
		if next.Status == StatusClosed {
			next.Status = StatusEditing
		}

	case ValidationFailed:
		next.Errors = maps.Clone(ev.Errors)
		if next.Errors == nil {
			next.Errors = map[string]string{}
		}
		next.Status = StatusEditing

	case SubmitStarted:
		next.Status = StatusSubmitting
		next.Notice = nil

	case SubmitSucceeded:
		next = reset(s)
		next.EntityID = ev.EntityID

	case SubmitFailed:
		next.Status = StatusEditing
		next.Notice = &Notice{Kind: NoticeTransient, Message: ev.Message}

	case ListSyncFailed:
		next = reset(s)
		next.EntityID = ev.EntityID
		next.Notice = &Notice{Kind: NoticeListSync, Message: ev.Message}

	case NoticeDismissed:
		next.Notice = nil
	}

	return next
}

func reset(s State) State {
	next := New(s.Kind, s.ListID)
	next.Status = StatusClosed
	return next
}
