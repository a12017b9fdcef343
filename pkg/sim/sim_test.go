package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logical-clock/pkg/clock"
	"logical-clock/pkg/config"
)

func TestRunner_DefaultScenario(t *testing.T) {
	cfg := config.Default()
	cfg.PopulateDefaults()
	require.NoError(t, cfg.Validate())

	runner, err := New(cfg)
	require.NoError(t, err)

	report, err := runner.Run()
	require.NoError(t, err)

	// bob never received anything, so his last timestamp is causally
	// before alice's final one
	ord, ok := report.Ordering("bob", "alice")
	require.True(t, ok)
	assert.Equal(t, clock.Before, ord)
}

func TestRunner_LamportTimeIsTotal(t *testing.T) {
	cfg := &config.Config{
		Clock:     config.ClockConfig{Kind: clock.LamportKind},
		Processes: []string{"a", "b"},
		Steps: []config.Step{
			{Op: "tick", Process: "a", Times: 2},
			{Op: "tick", Process: "b", Times: 2},
		},
	}
	cfg.PopulateDefaults()
	require.NoError(t, cfg.Validate())

	runner, err := New(cfg)
	require.NoError(t, err)

	report, err := runner.Run()
	require.NoError(t, err)

	// the processes never communicated, yet scalar time still orders
	// them via the process id tie-break
	ord, ok := report.Ordering("a", "b")
	require.True(t, ok)
	assert.NotEqual(t, clock.Concurrent, ord)
	assert.NotEqual(t, clock.Equal, ord)
}

func TestRunner_VectorTimeWithoutCommunicationIsConcurrent(t *testing.T) {
	cfg := &config.Config{
		Clock:     config.ClockConfig{Kind: clock.VectorKind},
		Processes: []string{"a", "b"},
		Steps: []config.Step{
			{Op: "tick", Process: "a"},
			{Op: "tick", Process: "b"},
		},
	}
	cfg.PopulateDefaults()
	require.NoError(t, cfg.Validate())

	runner, err := New(cfg)
	require.NoError(t, err)

	report, err := runner.Run()
	require.NoError(t, err)

	ord, ok := report.Ordering("a", "b")
	require.True(t, ok)
	assert.Equal(t, clock.Concurrent, ord)
}

// Duplicated and reordered delivery must not break monotonicity:
// observe is idempotent and commutative.
func TestRunner_FaultyDeliveryStillOrders(t *testing.T) {
	cfg := &config.Config{
		Clock: config.ClockConfig{Kind: clock.VectorKind},
		Network: config.NetworkConfig{
			Seed:      42,
			Duplicate: true,
			Reorder:   true,
		},
		Processes: []string{"a", "b"},
		Steps: []config.Step{
			{Op: "send", From: "a", To: "b", Times: 3},
			{Op: "recv", Process: "b"},
			{Op: "tick", Process: "b"},
		},
	}
	cfg.PopulateDefaults()
	require.NoError(t, cfg.Validate())

	runner, err := New(cfg)
	require.NoError(t, err)

	report, err := runner.Run()
	require.NoError(t, err)

	ord, ok := report.Ordering("b", "a")
	require.True(t, ok)
	assert.Equal(t, clock.After, ord)
}

func TestNew_UnknownKind(t *testing.T) {
	cfg := &config.Config{
		Clock:     config.ClockConfig{Kind: "hlc"},
		Processes: []string{"a"},
	}

	_, err := New(cfg)
	require.ErrorIs(t, err, clock.ErrUnknownKind)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, config.ErrConfigIsNil)
}

func TestMember_CompareAcrossKindsFails(t *testing.T) {
	lamport, err := newMember(clock.LamportKind)
	require.NoError(t, err)
	vector, err := newMember(clock.VectorKind)
	require.NoError(t, err)

	_, err = lamport.CompareLast(vector)
	require.ErrorIs(t, err, ErrKindMismatch)
}
