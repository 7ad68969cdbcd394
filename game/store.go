package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/systems"
)

// Store owns the agent and food entities of one match.
// Entities are only removed outside open queries; the consumption system
// marks victims dead during a pass and removes them at its commit point.
type Store struct {
	world *ecs.World

	cellMapper *ecs.Map4[
		components.Position,
		components.Heading,
		components.Cell,
		components.Team,
	]
	cellFilter *ecs.Filter4[
		components.Position,
		components.Heading,
		components.Cell,
		components.Team,
	]
	foodMapper *ecs.Map2[components.Position, components.Food]
	foodFilter *ecs.Filter2[components.Position, components.Food]
	isFood     *ecs.Map[components.Food]

	nextID    uint32
	cellCount int
	foodCount int
}

// NewStore creates an empty store backed by w.
func NewStore(w *ecs.World) *Store {
	return &Store{
		world: w,
		cellMapper: ecs.NewMap4[
			components.Position,
			components.Heading,
			components.Cell,
			components.Team,
		](w),
		cellFilter: ecs.NewFilter4[
			components.Position,
			components.Heading,
			components.Cell,
			components.Team,
		](w),
		foodMapper: ecs.NewMap2[components.Position, components.Food](w),
		foodFilter: ecs.NewFilter2[components.Position, components.Food](w),
		isFood:     ecs.NewMap[components.Food](w),
	}
}

// SpawnCell creates an agent with derived radius and speed set from mass.
// The wander timer starts expired so the first motion tick picks a heading.
func (s *Store) SpawnCell(x, y float64, team int, color components.Color, mass float64, growth systems.GrowthParams) ecs.Entity {
	id := s.nextID
	s.nextID++

	pos := components.Position{X: x, Y: y}
	heading := components.Heading{}
	cell := components.Cell{ID: id, Team: team, Alive: true}
	systems.SetMass(&cell, mass, growth)
	tag := components.Team{Color: color}

	s.cellCount++
	return s.cellMapper.NewEntity(&pos, &heading, &cell, &tag)
}

// SpawnFood creates a pellet.
func (s *Store) SpawnFood(x, y, radius float64, color components.Color) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	food := components.Food{Radius: radius, Color: color, Alive: true}

	s.foodCount++
	return s.foodMapper.NewEntity(&pos, &food)
}

// Remove deletes an entity immediately. Must not be called while a query is open.
// Removing an entity that is already gone is a no-op.
func (s *Store) Remove(e ecs.Entity) {
	if !s.world.Alive(e) {
		return
	}
	if s.isFood.Has(e) {
		s.foodCount--
	} else {
		s.cellCount--
	}
	s.world.RemoveEntity(e)
}

// forgetRemoved updates counts after the consumption system removed entities itself.
func (s *Store) forgetRemoved(food, cells int) {
	s.foodCount -= food
	s.cellCount -= cells
}

// CellCount returns the number of live agents.
func (s *Store) CellCount() int {
	return s.cellCount
}

// FoodCount returns the number of pellets.
func (s *Store) FoodCount() int {
	return s.foodCount
}

// Cells appends a copy of every live agent to dst.
func (s *Store) Cells(dst []components.Cell) []components.Cell {
	query := s.cellFilter.Query()
	for query.Next() {
		_, _, cell, _ := query.Get()
		if cell.Alive {
			dst = append(dst, *cell)
		}
	}
	return dst
}

// ForEachCell calls fn for every live agent. fn must not add or remove entities.
func (s *Store) ForEachCell(fn func(e ecs.Entity, pos *components.Position, cell *components.Cell, team *components.Team)) {
	query := s.cellFilter.Query()
	for query.Next() {
		pos, _, cell, team := query.Get()
		if cell.Alive {
			fn(query.Entity(), pos, cell, team)
		}
	}
}

// ForEachFood calls fn for every pellet. fn must not add or remove entities.
func (s *Store) ForEachFood(fn func(e ecs.Entity, pos *components.Position, food *components.Food)) {
	query := s.foodFilter.Query()
	for query.Next() {
		pos, food := query.Get()
		if food.Alive {
			fn(query.Entity(), pos, food)
		}
	}
}
