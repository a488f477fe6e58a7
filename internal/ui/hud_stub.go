//go:build !ebiten

package ui

import "fade-life/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider, int) *HUD { return nil }

// Update never reports a command in the headless build.
func (h *HUD) Update(int) core.Command { return core.CommandNone }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
