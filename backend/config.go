package main

import "sync"

// defaultTTSize matches the capacity the solver was tuned with; at 16 bytes
// per entry the table tops out at 64 MiB.
const defaultTTSize = 1 << 22

type Config struct {
	ListenAddr string `json:"listen_addr"`

	SolverEnableTT       bool `json:"solver_enable_tt"`
	SolverTtSize         int  `json:"solver_tt_size"`
	SolverLogSearchStats bool `json:"solver_log_search_stats"`

	SolverEnableTtPersistence bool   `json:"solver_enable_tt_persistence"`
	SolverTtPersistencePath   string `json:"solver_tt_persistence_path"`

	AnalysisEnabled bool `json:"analysis_enabled"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		ListenAddr: ":8080",

		SolverEnableTT:       true,
		SolverTtSize:         defaultTTSize,
		SolverLogSearchStats: false,

		SolverEnableTtPersistence: false,
		SolverTtPersistencePath:   "connect4_tt.gob",

		AnalysisEnabled: true,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
