package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
)

// Rules holds the consumption parameters.
type Rules struct {
	FoodMass       float64
	EatThreshold   float64 // eater mass must exceed victim mass * this
	SameTeamEating bool
}

// RulesFromConfig extracts consumption rules from config.
func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		FoodMass:       cfg.Food.Mass,
		EatThreshold:   cfg.Rules.EatThreshold,
		SameTeamEating: cfg.Rules.SameTeamEating,
	}
}

// CellRef is a stable handle to an agent's components for one phase.
type CellRef struct {
	E    ecs.Entity
	Pos  *components.Position
	Cell *components.Cell
}

// FoodRef is a stable handle to a food pellet's components for one phase.
type FoodRef struct {
	E    ecs.Entity
	Pos  *components.Position
	Food *components.Food
}

// Consumption records one agent absorbing another.
type Consumption struct {
	Eater     uint32
	Eaten     uint32
	EaterTeam int
	EatenTeam int
	EatenMass float64
	EaterMass float64 // eater mass after absorbing
}

// SameTeam reports whether the eater and the eaten were teammates.
func (c Consumption) SameTeam() bool {
	return c.EaterTeam == c.EatenTeam
}

// ConsumptionResult summarizes one tick of the consumption phase.
type ConsumptionResult struct {
	FoodEaten    int
	Consumptions []Consumption
}

// Contains reports whether small's circle lies strictly inside big's circle.
func Contains(bigPos components.Position, bigRadius float64, smallPos components.Position, smallRadius float64) bool {
	d := Distance(bigPos.X, bigPos.Y, smallPos.X, smallPos.Y)
	return d+smallRadius < bigRadius
}

// EatFood lets every live agent eat every live pellet it overlaps.
// Radius grows as soon as a pellet is eaten, so later pellets in the same scan
// are tested against the new size. When two agents overlap one pellet the
// agent scanned first gets it.
func EatFood(cells []CellRef, food []FoodRef, rules Rules, growth GrowthParams) int {
	eaten := 0
	for _, c := range cells {
		if !c.Cell.Alive {
			continue
		}
		for _, f := range food {
			if !f.Food.Alive {
				continue
			}
			d := Distance(c.Pos.X, c.Pos.Y, f.Pos.X, f.Pos.Y)
			if d < c.Cell.Radius+f.Food.Radius {
				SetMass(c.Cell, c.Cell.Mass+rules.FoodMass, growth)
				f.Food.Alive = false
				eaten++
			}
		}
	}
	return eaten
}

// EatCells resolves agent-versus-agent consumption over every unordered pair.
// Liveness is checked per pair, so an agent eaten earlier in the scan never
// eats or gets eaten again. Appends each consumption to dst.
func EatCells(cells []CellRef, rules Rules, growth GrowthParams, dst []Consumption) []Consumption {
	for i := range cells {
		a := cells[i]
		for j := i + 1; j < len(cells); j++ {
			if !a.Cell.Alive {
				break
			}
			b := cells[j]
			if !b.Cell.Alive {
				continue
			}
			if !rules.SameTeamEating && a.Cell.Team == b.Cell.Team {
				continue
			}

			switch {
			case a.Cell.Mass > b.Cell.Mass*rules.EatThreshold &&
				Contains(*a.Pos, a.Cell.Radius, *b.Pos, b.Cell.Radius):
				dst = append(dst, absorb(a.Cell, b.Cell, growth))
			case b.Cell.Mass > a.Cell.Mass*rules.EatThreshold &&
				Contains(*b.Pos, b.Cell.Radius, *a.Pos, a.Cell.Radius):
				dst = append(dst, absorb(b.Cell, a.Cell, growth))
			}
		}
	}
	return dst
}

// absorb moves all of victim's mass into eater and kills victim.
func absorb(eater, victim *components.Cell, growth GrowthParams) Consumption {
	eaten := victim.Mass
	SetMass(eater, eater.Mass+eaten, growth)
	victim.Alive = false
	return Consumption{
		Eater:     eater.ID,
		Eaten:     victim.ID,
		EaterTeam: eater.Team,
		EatenTeam: victim.Team,
		EatenMass: eaten,
		EaterMass: eater.Mass,
	}
}

// ConsumptionSystem runs the food pass and the agent pass, removing eaten
// entities from the world after each pass completes.
type ConsumptionSystem struct {
	world      *ecs.World
	cellFilter *ecs.Filter2[components.Position, components.Cell]
	foodFilter *ecs.Filter2[components.Position, components.Food]
	rules      Rules
	growth     GrowthParams

	// Scratch buffers reused across ticks
	cells []CellRef
	food  []FoodRef
	dead  []ecs.Entity
}

// NewConsumptionSystem creates a new consumption system.
func NewConsumptionSystem(w *ecs.World, rules Rules, growth GrowthParams) *ConsumptionSystem {
	return &ConsumptionSystem{
		world:      w,
		cellFilter: ecs.NewFilter2[components.Position, components.Cell](w),
		foodFilter: ecs.NewFilter2[components.Position, components.Food](w),
		rules:      rules,
		growth:     growth,
	}
}

// Update runs both passes and returns what was eaten.
func (s *ConsumptionSystem) Update() ConsumptionResult {
	// No spatial partitioning: both passes scan every pair, which stays cheap
	// for the tens of agents a match holds.
	return ConsumptionResult{
		FoodEaten:    s.FoodPass(),
		Consumptions: s.CellPass(nil),
	}
}

// FoodPass lets every agent eat the pellets it overlaps and returns the number eaten.
func (s *ConsumptionSystem) FoodPass() int {
	s.snapshotCells()
	s.snapshotFood()
	n := EatFood(s.cells, s.food, s.rules, s.growth)
	s.commitFood()
	return n
}

// CellPass resolves agent-against-agent consumption, appending each event to dst.
func (s *ConsumptionSystem) CellPass(dst []Consumption) []Consumption {
	s.snapshotCells()
	dst = EatCells(s.cells, s.rules, s.growth, dst)
	s.commitCells()
	return dst
}

// snapshotCells captures handles to all live agents in query order.
func (s *ConsumptionSystem) snapshotCells() {
	s.cells = s.cells[:0]
	query := s.cellFilter.Query()
	for query.Next() {
		pos, cell := query.Get()
		if cell.Alive {
			s.cells = append(s.cells, CellRef{E: query.Entity(), Pos: pos, Cell: cell})
		}
	}
}

// snapshotFood captures handles to all live pellets in query order.
func (s *ConsumptionSystem) snapshotFood() {
	s.food = s.food[:0]
	query := s.foodFilter.Query()
	for query.Next() {
		pos, food := query.Get()
		if food.Alive {
			s.food = append(s.food, FoodRef{E: query.Entity(), Pos: pos, Food: food})
		}
	}
}

// commitFood removes eaten pellets. Must run with no open query.
func (s *ConsumptionSystem) commitFood() {
	s.dead = s.dead[:0]
	for _, f := range s.food {
		if !f.Food.Alive {
			s.dead = append(s.dead, f.E)
		}
	}
	s.removeDead()
	s.food = s.food[:0]
}

// commitCells removes eaten agents. Must run with no open query.
func (s *ConsumptionSystem) commitCells() {
	s.dead = s.dead[:0]
	for _, c := range s.cells {
		if !c.Cell.Alive {
			s.dead = append(s.dead, c.E)
		}
	}
	s.removeDead()
	s.cells = s.cells[:0]
}

func (s *ConsumptionSystem) removeDead() {
	for _, e := range s.dead {
		if s.world.Alive(e) {
			s.world.RemoveEntity(e)
		}
	}
}
