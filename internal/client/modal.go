package client

import "sync"

// ModalMode selects what the modal's edit buffer starts from.
type ModalMode string

const (
	ModeCreate ModalMode = "create"
	ModeEdit   ModalMode = "edit"
	ModeView   ModalMode = "view" // all fields read-only
)

// ModalState is the modal's position in its lifecycle.
type ModalState string

const (
	StateClosed     ModalState = "closed"
	StateOpen       ModalState = "open"
	StateSubmitting ModalState = "submitting"
)

// ModalSession holds the transient edit buffer bound to one entity while
// a modal is open. Field edits mutate only the buffer; nothing reaches
// the server until the mutation coordinator's submit path runs.
//
// State machine: Closed -> Open -> {Submitting -> Closed on success |
// Open on failure, buffer retained} | Closed on explicit cancel.
type ModalSession[T any] struct {
	mu    sync.Mutex
	state ModalState
	mode  ModalMode

	blank     T
	buffer    T
	normalize func(T) T
}

// NewModalSession creates a closed modal. blank is the template create
// mode starts from; normalize (optional) is applied to the entity copy
// on edit/view open, e.g. truncating dates to date-only strings.
func NewModalSession[T any](blank T, normalize func(T) T) *ModalSession[T] {
	return &ModalSession[T]{
		state:     StateClosed,
		blank:     blank,
		normalize: normalize,
	}
}

// Open starts an edit session. Create mode ignores entity and starts
// from the blank template; edit and view copy the entity.
func (m *ModalSession[T]) Open(mode ModalMode, entity T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateOpen
	m.mode = mode

	if mode == ModeCreate {
		m.buffer = m.blank

		return
	}

	if m.normalize != nil {
		entity = m.normalize(entity)
	}
	m.buffer = entity
}

// Close discards the buffer unconditionally. No draft persistence.
func (m *ModalSession[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateClosed
	m.buffer = m.blank
}

// Buffer returns the current edit buffer.
func (m *ModalSession[T]) Buffer() T {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.buffer
}

// SetBuffer replaces the edit buffer, modelling field edits.
func (m *ModalSession[T]) SetBuffer(buffer T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.buffer = buffer
}

// State returns the current lifecycle state.
func (m *ModalSession[T]) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Mode returns the mode the modal was opened with.
func (m *ModalSession[T]) Mode() ModalMode {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mode
}

// beginSubmit moves Open -> Submitting. Returns false when the modal is
// not open (double submits, closed modal).
func (m *ModalSession[T]) beginSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateOpen {
		return false
	}
	m.state = StateSubmitting

	return true
}

// failSubmit moves Submitting -> Open, keeping the buffer for correction.
func (m *ModalSession[T]) failSubmit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateSubmitting {
		m.state = StateOpen
	}
}

// completeSubmit moves Submitting -> Closed and discards the buffer.
func (m *ModalSession[T]) completeSubmit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateClosed
	m.buffer = m.blank
}

// TruncateDate normalizes a datetime string to its date-only prefix.
func TruncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}

	return s
}
