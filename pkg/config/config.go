package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Clock     ClockConfig   `yaml:"clock"`
	Network   NetworkConfig `yaml:"network"`
	Log       LogConfig     `yaml:"log"`
	Processes []string      `yaml:"processes"`
	Steps     []Step        `yaml:"steps"`
}

type ClockConfig struct {
	Kind string `yaml:"kind"`
}

// NetworkConfig — модель доставки между процессами сценария.
// Дубли и переупорядочивание включаются намеренно: корректность часов
// от них не зависит
type NetworkConfig struct {
	Seed      int64 `yaml:"seed"`
	Duplicate bool  `yaml:"duplicate"`
	Reorder   bool  `yaml:"reorder"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Step — один шаг сценария
type Step struct {
	Op      string `yaml:"op"`                // tick | send | recv
	Process string `yaml:"process,omitempty"` // для tick и recv
	From    string `yaml:"from,omitempty"`    // для send
	To      string `yaml:"to,omitempty"`
	Times   int    `yaml:"times,omitempty"` // повторы шага, по умолчанию 1
}

func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
