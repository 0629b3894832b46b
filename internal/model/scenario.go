package model

import (
	"sort"
	"sync"

	"github.com/meridian-health/meridian/internal/model/fx"
)

// Engine evaluates the planning model over an immutable dataset. The
// only mutable state is the active-scenario pointer; every computation
// also accepts an explicit scenario name that takes precedence, so
// callers that must not depend on process-wide state can pass one.
type Engine struct {
	data      *Dataset
	converter *fx.Converter

	mu     sync.RWMutex
	active string
}

// New constructs an engine over a dataset. The active scenario starts
// at the dataset default.
func New(data *Dataset) *Engine {
	return &Engine{
		data:      data,
		converter: fx.NewConverter(data.Currencies),
		active:    data.DefaultScenario,
	}
}

// Dataset exposes the read-only planning data.
func (e *Engine) Dataset() *Dataset {
	return e.data
}

// Converter exposes the engine's currency converter.
func (e *Engine) Converter() *fx.Converter {
	return e.converter
}

// ScenarioInfo describes a growth scenario for selection UIs.
type ScenarioInfo struct {
	Key         string
	Name        string
	Description string
	Active      bool
}

// SwitchScenario moves the active-scenario pointer. Unknown names leave
// the pointer unchanged and report false; there is no error path.
func (e *Engine) SwitchScenario(name string) bool {
	if _, ok := e.data.Scenarios[name]; !ok {
		return false
	}
	e.mu.Lock()
	e.active = name
	e.mu.Unlock()
	return true
}

// CurrentScenario returns the active scenario.
func (e *Engine) CurrentScenario() ScenarioInfo {
	key := e.activeKey()
	info := ScenarioInfo{Key: key, Active: true}
	if sc, ok := e.data.Scenarios[key]; ok {
		info.Name = sc.Name
		info.Description = sc.Description
	}
	return info
}

// Scenarios lists every configured scenario in stable key order.
func (e *Engine) Scenarios() []ScenarioInfo {
	keys := make([]string, 0, len(e.data.Scenarios))
	for key := range e.data.Scenarios {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	active := e.activeKey()
	out := make([]ScenarioInfo, 0, len(keys))
	for _, key := range keys {
		sc := e.data.Scenarios[key]
		out = append(out, ScenarioInfo{
			Key:         key,
			Name:        sc.Name,
			Description: sc.Description,
			Active:      key == active,
		})
	}
	return out
}

func (e *Engine) activeKey() string {
	e.mu.RLock()
	active := e.active
	e.mu.RUnlock()
	if active != "" {
		return active
	}
	return e.data.DefaultScenario
}

// resolveScenario picks the explicit scenario when given, otherwise the
// active one. A nil scenario comes back for unknown names; computations
// treat that as missing data, not an error.
func (e *Engine) resolveScenario(explicit string) (string, *Scenario) {
	key := explicit
	if key == "" {
		key = e.activeKey()
	}
	return key, e.data.Scenarios[key]
}
