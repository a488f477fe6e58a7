package life

import "fade-life/internal/core"

// Parameters describes the grid layout for the HUD.
func (g *Grid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{g.ParameterGroup()}}
}

// ParameterGroup returns the grid's parameters as a single group.
func (g *Grid) ParameterGroup() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Grid",
		Params: []core.Parameter{
			core.IntParam("w", "Width", g.cfg.VisibleWidth),
			core.IntParam("h", "Height", g.cfg.VisibleHeight),
			core.IntParam("margin", "Margin", g.cfg.Margin),
		},
	}
}
