package sim

import (
	"fmt"
	"log/slog"
	"strings"

	"logical-clock/pkg/clock"
	"logical-clock/pkg/config"
)

// Runner воспроизводит сценарий: каждый процесс владеет ровно одними
// часами, метки между процессами ходят через network. Один Runner —
// один поток управления, внутренней синхронизации нет.
type Runner struct {
	cfg     *config.Config
	order   []string
	members map[string]member
	net     *network
}

func New(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, config.ErrConfigIsNil
	}

	members := make(map[string]member, len(cfg.Processes))
	for _, name := range cfg.Processes {
		m, err := newMember(cfg.Clock.Kind)
		if err != nil {
			return nil, err
		}
		members[name] = m
		slog.Debug("process created", "name", name, "pid", m.Process())
	}

	return &Runner{
		cfg:     cfg,
		order:   cfg.Processes,
		members: members,
		net:     newNetwork(cfg.Network),
	}, nil
}

// Run выполняет шаги сценария по порядку и строит итоговый отчёт
func (r *Runner) Run() (*Report, error) {
	for i, step := range r.cfg.Steps {
		times := step.Times
		if times <= 0 {
			times = 1
		}
		for range times {
			if err := r.apply(step); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		}
	}

	slog.Info("scenario finished",
		"processes", len(r.order), "steps", len(r.cfg.Steps))
	return r.report()
}

func (r *Runner) apply(step config.Step) error {
	switch step.Op {
	case "tick":
		m := r.members[step.Process]
		m.Tick()
		slog.Debug("tick", "process", step.Process, "ts", m.Last())

	case "send":
		m := r.members[step.From]
		payload, err := m.Send()
		if err != nil {
			return err
		}
		r.net.deliver(step.To, payload)
		slog.Debug("send", "from", step.From, "to", step.To, "ts", m.Last())

	case "recv":
		m := r.members[step.Process]
		delivered := r.net.drain(step.Process)
		for _, payload := range delivered {
			if err := m.Deliver(payload); err != nil {
				return err
			}
		}
		slog.Debug("recv", "process", step.Process, "messages", len(delivered))

	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownOp, step.Op)
	}
	return nil
}

// Relation — порядок последних меток пары процессов
type Relation struct {
	Left     string
	Right    string
	Ordering clock.Ordering
}

// Report — последняя метка каждого процесса и попарные порядки
type Report struct {
	Final     map[string]string
	Relations []Relation
}

func (r *Runner) report() (*Report, error) {
	rep := &Report{Final: make(map[string]string, len(r.order))}
	for _, name := range r.order {
		rep.Final[name] = r.members[name].Last()
	}

	for i := 0; i < len(r.order); i++ {
		for j := i + 1; j < len(r.order); j++ {
			left, right := r.order[i], r.order[j]
			ord, err := r.members[left].CompareLast(r.members[right])
			if err != nil {
				return nil, err
			}
			rep.Relations = append(rep.Relations, Relation{Left: left, Right: right, Ordering: ord})
		}
	}
	return rep, nil
}

// Ordering возвращает порядок последних меток пары процессов из отчёта
func (rep *Report) Ordering(left, right string) (clock.Ordering, bool) {
	for _, rel := range rep.Relations {
		if rel.Left == left && rel.Right == right {
			return rel.Ordering, true
		}
		if rel.Left == right && rel.Right == left {
			return flip(rel.Ordering), true
		}
	}
	return 0, false
}

func flip(o clock.Ordering) clock.Ordering {
	switch o {
	case clock.Before:
		return clock.After
	case clock.After:
		return clock.Before
	}
	return o
}

func (rep *Report) String() string {
	var b strings.Builder
	for _, rel := range rep.Relations {
		fmt.Fprintf(&b, "%s %s vs %s %s: %s\n",
			rel.Left, rep.Final[rel.Left], rel.Right, rep.Final[rel.Right], rel.Ordering)
	}
	return b.String()
}
