package antwar

import (
	"fmt"
	"math/rand"
)

// Phase identifies which breed has just finished acting when a snapshot is
// handed to observers.
type Phase string

const (
	PhaseRedMoved  Phase = "red_moved"
	PhaseBlueMoved Phase = "blue_moved"
)

// Observer receives a read-only snapshot after each breed's activation
// phase. The handoff is synchronous and must not mutate the world; an
// observer that needs to do slow work should copy and return.
type Observer interface {
	ObservePhase(s Snapshot)
}

// World owns all mutable simulation state: the grid and scent field, the
// coordinate-indexed ant directory, the per-breed priority lists and the
// seeded random generator. All mutation goes through its action-resolution
// entry points, which keep grid and directory consistent after every call.
type World struct {
	cfg       Config
	grid      *Grid
	rng       *rand.Rand
	decayRate float64

	ants map[Coord]*Ant
	red  []*Ant
	blue []*Ant

	redCenter  Coord
	blueCenter Coord
	resources  *resourceField

	tick           int
	redEatenTotal  int
	blueEatenTotal int
	redEatenTick   int
	blueEatenTick  int
	redDeathsTick  int
	blueDeathsTick int

	observers []Observer
	logger    Logger
}

// NewWorld builds a world from a validated config. The red home center sits
// at (size/3, size/2), the blue one at (2*size/3+1, size/2).
func NewWorld(cfg Config) (*World, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	size := cfg.GridSize
	w := &World{
		cfg:        cfg,
		grid:       NewGrid(size),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		decayRate:  cfg.DecayRate(),
		ants:       make(map[Coord]*Ant),
		redCenter:  Coord{X: size / 3, Y: size / 2},
		blueCenter: Coord{X: 2*size/3 + 1, Y: size / 2},
		resources:  newResourceField(cfg),
		logger:     NewNoOpLogger(),
	}
	return w, nil
}

// SetLogger injects a logger; the default is a no-op.
func (w *World) SetLogger(l Logger) {
	if l != nil {
		w.logger = l
	}
}

// AddObserver registers an observer for per-phase snapshots.
func (w *World) AddObserver(o Observer) {
	if o != nil {
		w.observers = append(w.observers, o)
	}
}

// Config returns the config the world was built from.
func (w *World) Config() Config {
	return w.cfg
}

// Tick returns the number of completed ticks.
func (w *World) Tick() int {
	return w.tick
}

// Population returns the number of live ants of the breed.
func (w *World) Population(b Breed) int {
	n := 0
	for _, a := range w.list(b) {
		if !a.dead {
			n++
		}
	}
	return n
}

// EatenTotal returns the cumulative number of resources consumed by the breed.
func (w *World) EatenTotal(b Breed) int {
	if b == BreedRed {
		return w.redEatenTotal
	}
	return w.blueEatenTotal
}

func (w *World) list(b Breed) []*Ant {
	if b == BreedRed {
		return w.red
	}
	return w.blue
}

func (w *World) center(b Breed) Coord {
	if b == BreedRed {
		return w.redCenter
	}
	return w.blueCenter
}

// basePower is the starting power for a fresh spawn of the breed.
func (w *World) basePower(b Breed) float64 {
	if w.cfg.Asymmetric && b == BreedRed {
		return 2 * w.cfg.BasePower
	}
	return w.cfg.BasePower
}

// maxPower is the breed's power cap applied when eating.
func (w *World) maxPower(b Breed) float64 {
	if w.cfg.Asymmetric && b == BreedRed {
		return 2 * w.cfg.MaxPower
	}
	return w.cfg.MaxPower
}

// Step advances the simulation by one tick: spawn attempts, resource
// refresh, red activation, blue activation (each followed by an observer
// handoff), then global scent decay. It returns the tick's statistics.
func (w *World) Step() TickStats {
	w.redEatenTick, w.blueEatenTick = 0, 0
	w.redDeathsTick, w.blueDeathsTick = 0, 0

	w.spawnAnts()
	w.resources.step(w)

	w.activate(&w.red)
	w.notifyObservers(PhaseRedMoved)
	w.activate(&w.blue)
	w.notifyObservers(PhaseBlueMoved)

	w.grid.DecayScent(w.decayRate)
	w.tick++

	stats := TickStats{
		Tick:           w.tick,
		RedPopulation:  w.Population(BreedRed),
		BluePopulation: w.Population(BreedBlue),
		RedEaten:       w.redEatenTick,
		BlueEaten:      w.blueEatenTick,
		RedDeaths:      w.redDeathsTick,
		BlueDeaths:     w.blueDeathsTick,
	}
	w.logger.Debugf("tick %d: red=%d blue=%d eaten=%d/%d deaths=%d/%d",
		stats.Tick, stats.RedPopulation, stats.BluePopulation,
		stats.RedEaten, stats.BlueEaten, stats.RedDeaths, stats.BlueDeaths)
	return stats
}

// spawnAnts attempts one spawn per home center. In asymmetric mode the blue
// breed gets a second attempt at the cell right of its primary center.
func (w *World) spawnAnts() {
	w.trySpawn(w.redCenter, BreedRed)
	w.trySpawn(w.blueCenter, BreedBlue)
	if w.cfg.Asymmetric {
		second := w.grid.Wrap(Coord{X: w.blueCenter.X + 1, Y: w.blueCenter.Y})
		w.trySpawn(second, BreedBlue)
	}
}

func (w *World) trySpawn(at Coord, b Breed) {
	if _, occupied := w.ants[at]; occupied {
		return
	}
	if w.rng.Float64() >= w.cfg.SpawnProbability {
		return
	}
	a := &Ant{pos: at, breed: b, power: w.basePower(b), state: StateForaging}
	w.ants[at] = a
	w.grid.SetCell(at, CellOf(b))
	if b == BreedRed {
		w.red = append(w.red, a)
	} else {
		w.blue = append(w.blue, a)
	}
}

// activate runs one breed's phase in priority order (oldest spawn first),
// compacting out ants that died since their last activation. An ant marked
// dead mid-phase is never acted on again.
func (w *World) activate(list *[]*Ant) {
	ants := *list
	kept := ants[:0]
	for _, a := range ants {
		if a.dead {
			continue
		}
		w.act(a)
		if a.dead {
			// Died from its own attack recoil.
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(ants); i++ {
		ants[i] = nil
	}
	*list = kept
}

// act resolves one ant's chosen action against the world: a move (eating on
// arrival if the target held a resource), combat against an opposing ant,
// or cooperative power sharing with an own-breed ant.
func (w *World) act(a *Ant) {
	target, observed := a.chooseTarget(w)
	if target == a.pos {
		return
	}
	if occupant, ok := observed.Occupant(); ok {
		other := w.ants[target]
		if other == nil {
			panic(fmt.Sprintf("antwar: grid says %v holds a %s ant but the directory has no entry", target, occupant))
		}
		if occupant == a.breed.Opposite() {
			w.fight(a, other, target)
		} else {
			avg := (a.power + other.power) / 2
			a.power, other.power = avg, avg
		}
		return
	}
	w.moveAnt(a, target)
}

// fight applies combat: full damage to the defender, a smaller recoil to
// the attacker. A surviving attacker moves into the cell its victim vacated.
func (w *World) fight(att, def *Ant, target Coord) {
	w.hurt(def, w.cfg.AttackDamage)
	w.hurt(att, w.cfg.AttackRecoil)
	if att.dead {
		return
	}
	if def.dead {
		w.moveAnt(att, target)
	}
}

func (w *World) hurt(a *Ant, amount float64) {
	a.power -= amount
	if a.power <= 0 {
		w.eraseAnt(a)
	}
}

// moveAnt relocates an ant, consuming a resource on the target cell before
// the ant occupies it. Grid and directory are updated together.
func (w *World) moveAnt(a *Ant, to Coord) {
	w.grid.SetCell(a.pos, CellEmpty)
	delete(w.ants, a.pos)
	if w.grid.Cell(to) == CellResource {
		w.eat(a)
	}
	w.ants[to] = a
	w.grid.SetCell(to, CellOf(a.breed))
	a.pos = to
}

// eat restores power up to the breed's cap and flips the ant into the
// returning state with a fresh trail counter.
func (w *World) eat(a *Ant) {
	a.power += w.cfg.EatGain
	if limit := w.maxPower(a.breed); a.power > limit {
		a.power = limit
	}
	a.state = StateReturning
	a.stepsSinceFound = 0
	if a.breed == BreedRed {
		w.redEatenTotal++
		w.redEatenTick++
	} else {
		w.blueEatenTotal++
		w.blueEatenTick++
	}
}

// eraseAnt removes a dead ant from the grid and directory and marks it for
// pruning from its priority list. The death is counted against the tick in
// which it happened.
func (w *World) eraseAnt(a *Ant) {
	w.grid.SetCell(a.pos, CellEmpty)
	delete(w.ants, a.pos)
	a.dead = true
	if a.breed == BreedRed {
		w.redDeathsTick++
	} else {
		w.blueDeathsTick++
	}
}

func (w *World) notifyObservers(phase Phase) {
	if len(w.observers) == 0 {
		return
	}
	s := w.Snapshot(phase)
	for _, o := range w.observers {
		o.ObservePhase(s)
	}
}
