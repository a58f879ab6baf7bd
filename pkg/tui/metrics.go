package tui

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Metrics is one host sample shown by the gauge widget.
type Metrics struct {
	CPUPercent  float64
	MemPercent  float64
	SwapPercent float64
	Load1       float64
}

// SampleMetrics reads the current host metrics. The CPU figure compares
// against the previous call, so the first sample reads as zero.
func SampleMetrics() (Metrics, error) {
	var m Metrics

	percents, err := cpu.Percent(0, false)
	if err != nil {
		return m, fmt.Errorf("sample cpu: %w", err)
	}
	if len(percents) > 0 {
		m.CPUPercent = percents[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return m, fmt.Errorf("sample memory: %w", err)
	}
	m.MemPercent = vm.UsedPercent

	if sm, err := mem.SwapMemory(); err == nil {
		m.SwapPercent = sm.UsedPercent
	}
	if avg, err := load.Avg(); err == nil {
		m.Load1 = avg.Load1
	}

	return m, nil
}
