package config

import "logical-clock/pkg/clock"

var defaultClock = ClockConfig{
	Kind: clock.VectorKind,
}

var defaultNetwork = NetworkConfig{
	Seed: 1,
}

var defaultLog = LogConfig{
	Level: "info",
}

// Default — сценарий по умолчанию: alice тикает дважды, bob отправляет ей
// свою метку, alice её принимает и тикает ещё раз. Bob ничего не принимает,
// так что для векторных часов последние метки упорядочены в одну сторону
func Default() *Config {
	return &Config{
		Clock:     defaultClock,
		Network:   defaultNetwork,
		Log:       defaultLog,
		Processes: []string{"alice", "bob"},
		Steps: []Step{
			{Op: "tick", Process: "alice", Times: 2},
			{Op: "send", From: "bob", To: "alice"},
			{Op: "recv", Process: "alice"},
			{Op: "tick", Process: "alice"},
		},
	}
}

func (c *ClockConfig) PopulateDefaults() {
	if c.Kind == "" {
		c.Kind = defaultClock.Kind
	}
}

func (c *NetworkConfig) PopulateDefaults() {
	if c.Seed == 0 {
		c.Seed = defaultNetwork.Seed
	}
}

func (c *LogConfig) PopulateDefaults() {
	if c.Level == "" {
		c.Level = defaultLog.Level
	}
}

func (c *Config) PopulateDefaults() {
	c.Clock.PopulateDefaults()
	c.Network.PopulateDefaults()
	c.Log.PopulateDefaults()

	if len(c.Processes) == 0 && len(c.Steps) == 0 {
		def := Default()
		c.Processes = def.Processes
		c.Steps = def.Steps
	}

	for i := range c.Steps {
		if c.Steps[i].Times == 0 {
			c.Steps[i].Times = 1
		}
	}
}
