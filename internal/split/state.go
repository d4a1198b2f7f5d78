package split

// State is a step of a split run
type State int

const (
	StateStart State = iota
	StateLoaded
	StateScanned
	StateResolved
	StatePartitioned
	StateComposed
	StateDone
	StateFallback
	StateAbort
)

var stateNames = map[State]string{
	StateStart:       "START",
	StateLoaded:      "LOADED",
	StateScanned:     "SCANNED",
	StateResolved:    "RESOLVED",
	StatePartitioned: "PARTITIONED",
	StateComposed:    "COMPOSED",
	StateDone:        "DONE",
	StateFallback:    "FALLBACK",
	StateAbort:       "ABORT",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Terminal reports whether no further transition can happen
func (s State) Terminal() bool {
	return s == StateDone || s == StateAbort
}
