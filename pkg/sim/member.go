package sim

import (
	"encoding/json"
	"fmt"

	"logical-clock/pkg/clock"
)

// member — участник сценария поверх стёртого типа часов.
// Метки между участниками ходят только в сериализованном виде,
// как ходили бы по настоящему каналу.
type member interface {
	// Tick — локальное событие
	Tick()

	// Send — событие отправки: продвигает часы и кодирует свежую метку
	Send() ([]byte, error)

	// Deliver декодирует метку и сливает её в часы, не продвигая их
	Deliver(payload []byte) error

	// Last — последняя метка, возвращённая Advance
	Last() string

	// CompareLast сравнивает последние метки участников одного вида часов
	CompareLast(other member) (clock.Ordering, error)

	Process() clock.PID
}

func newMember(kind string) (member, error) {
	switch kind {
	case clock.LamportKind:
		return &lamportMember{clock: clock.NewLamport[uint64]()}, nil
	case clock.VectorKind:
		return &vectorMember{clock: clock.NewVector[uint64]()}, nil
	}
	return nil, fmt.Errorf("%w: %q", clock.ErrUnknownKind, kind)
}

type lamportMember struct {
	clock *clock.LamportClock[uint64]
	last  clock.LamportTimestamp[uint64]
}

func (m *lamportMember) Tick() {
	m.last = m.clock.Advance()
}

func (m *lamportMember) Send() ([]byte, error) {
	m.last = m.clock.Advance()
	return json.Marshal(m.last)
}

func (m *lamportMember) Deliver(payload []byte) error {
	var ts clock.LamportTimestamp[uint64]
	if err := json.Unmarshal(payload, &ts); err != nil {
		return fmt.Errorf("lamport payload: %w", err)
	}
	m.clock.Observe(ts)
	return nil
}

func (m *lamportMember) Last() string {
	return m.last.String()
}

func (m *lamportMember) CompareLast(other member) (clock.Ordering, error) {
	o, ok := other.(*lamportMember)
	if !ok {
		return 0, fmt.Errorf("cannot compare %T with %T: %w", m, other, ErrKindMismatch)
	}
	return m.last.Compare(o.last), nil
}

func (m *lamportMember) Process() clock.PID {
	return m.clock.Process()
}

type vectorMember struct {
	clock *clock.VectorClock[uint64]
	last  clock.VectorTimestamp[uint64]
}

func (m *vectorMember) Tick() {
	m.last = m.clock.Advance()
}

func (m *vectorMember) Send() ([]byte, error) {
	m.last = m.clock.Advance()
	return json.Marshal(m.last)
}

func (m *vectorMember) Deliver(payload []byte) error {
	var ts clock.VectorTimestamp[uint64]
	if err := json.Unmarshal(payload, &ts); err != nil {
		return fmt.Errorf("vector payload: %w", err)
	}
	m.clock.Observe(ts)
	return nil
}

func (m *vectorMember) Last() string {
	return m.last.String()
}

func (m *vectorMember) CompareLast(other member) (clock.Ordering, error) {
	o, ok := other.(*vectorMember)
	if !ok {
		return 0, fmt.Errorf("cannot compare %T with %T: %w", m, other, ErrKindMismatch)
	}
	return m.last.Compare(o.last), nil
}

func (m *vectorMember) Process() clock.PID {
	return m.clock.Process()
}
