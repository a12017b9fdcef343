package config

import (
	"fmt"

	"logical-clock/pkg/clock"
	"logical-clock/pkg/structs"
)

var knownOps = structs.NewSet("tick", "send", "recv")

func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigIsNil
	}
	if err := c.Clock.Validate(); err != nil {
		return err
	}
	if err := c.validateProcesses(); err != nil {
		return err
	}
	if err := c.validateSteps(); err != nil {
		return err
	}
	return nil
}

func (c *ClockConfig) Validate() error {
	if !clock.KnownKind(c.Kind) {
		return fmt.Errorf("%w: %q", clock.ErrUnknownKind, c.Kind)
	}
	return nil
}

func (c *Config) validateProcesses() error {
	if len(c.Processes) == 0 {
		return ErrNoProcesses
	}

	seen := structs.NewSet[string]()
	for _, name := range c.Processes {
		if name == "" {
			return ErrEmptyProcessName
		}
		if seen.Contains(name) {
			return fmt.Errorf("%w: %q", ErrDuplicateProcess, name)
		}
		seen.Add(name)
	}
	return nil
}

func (c *Config) validateSteps() error {
	names := structs.NewSet(c.Processes...)

	for i, step := range c.Steps {
		if !knownOps.Contains(step.Op) {
			return fmt.Errorf("step %d: %w: %q", i, ErrUnknownOp, step.Op)
		}
		if step.Times < 0 {
			return fmt.Errorf("step %d: %w", i, ErrNegativeTimes)
		}

		switch step.Op {
		case "tick", "recv":
			if !names.Contains(step.Process) {
				return fmt.Errorf("step %d: %w: %q", i, ErrUnknownProcess, step.Process)
			}
		case "send":
			if step.From == "" || step.To == "" {
				return fmt.Errorf("step %d: %w", i, ErrMissingEndpoint)
			}
			if !names.Contains(step.From) {
				return fmt.Errorf("step %d: %w: %q", i, ErrUnknownProcess, step.From)
			}
			if !names.Contains(step.To) {
				return fmt.Errorf("step %d: %w: %q", i, ErrUnknownProcess, step.To)
			}
		}
	}
	return nil
}
