package catcher

import "go.uber.org/atomic"

type Statistics struct {
	Calls             atomic.Uint64 `json:"calls"`
	Succeeded         atomic.Uint64 `json:"succeeded"`
	Recovered         atomic.Uint64 `json:"recovered"`
	LastRecoveredTime atomic.Int64  `json:"last_recovered_time"`
}

func (c *Catcher) GetStatistics() *Statistics {
	return &c.stat
}
