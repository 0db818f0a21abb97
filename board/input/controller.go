package input

// View selects what the display shows.
type View uint8

const (
	ViewSimulation View = iota
	ViewHistogram
)

func (v View) String() string {
	switch v {
	case ViewSimulation:
		return "simulation"
	case ViewHistogram:
		return "histogram"
	default:
		return "unknown"
	}
}

// Spawner accepts spawn requests. Spawn reports whether a ball was added.
type Spawner interface {
	Spawn() bool
}

// Result summarizes one controller pass.
type Result struct {
	Requested int
	Spawned   int
	Toggled   bool
}

// Controller consumes button latches once per tick.
type Controller struct {
	spawn *Button
	view  *Button

	current View

	repeatEvery uint64
	lastRepeat  uint64
}

// NewController drives spawning from spawn and view changes from view.
// While spawn is held, another ball is requested every repeatMicros.
func NewController(spawn, view *Button, repeatMicros uint64) *Controller {
	return &Controller{
		spawn:       spawn,
		view:        view,
		current:     ViewSimulation,
		repeatEvery: repeatMicros,
	}
}

func (c *Controller) View() View { return c.current }

// Update runs one pass: single press spawn, hold-to-spawn, then the view toggle.
func (c *Controller) Update(nowMicros uint64, s Spawner) Result {
	var res Result

	if c.spawn.TakePress() {
		c.request(s, &res)
	}

	if c.spawn.Held() && c.current == ViewSimulation {
		if nowMicros-c.lastRepeat > c.repeatEvery {
			c.request(s, &res)
			c.lastRepeat = nowMicros
		}
	}

	if c.view.TakePress() {
		if c.current == ViewSimulation {
			c.current = ViewHistogram
		} else {
			c.current = ViewSimulation
		}
		res.Toggled = true
	}

	return res
}

func (c *Controller) request(s Spawner, res *Result) {
	if c.current != ViewSimulation {
		return
	}
	res.Requested++
	if s.Spawn() {
		res.Spawned++
	}
}
