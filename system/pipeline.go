package system

import (
	"github.com/lixenwraith/card-grove/engine"
)

// RegisterDefaultPipeline wires the full per-tick pipeline in its
// canonical order: spawn → selection → overlap → stack → tile →
// targeting → combat → layout → audio → death
// Registration order is irrelevant; priorities define the order
func RegisterDefaultPipeline(g *engine.Game) {
	w := g.World
	g.AddSystem(NewSpawnSystem(w))
	g.AddSystem(NewSelectionSystem(w))
	g.AddSystem(NewOverlapSystem(w))
	g.AddSystem(NewStackSystem(w))
	g.AddSystem(NewTileSystem(w))
	g.AddSystem(NewTargetingSystem(w))
	g.AddSystem(NewCombatSystem(w))
	g.AddSystem(NewLayoutSystem(w))
	g.AddSystem(NewAudioSystem(w))
	g.AddSystem(NewDeathSystem(w))
}
