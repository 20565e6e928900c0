package challenge

// Stage is one step of a hunt, from the widest area to exact coordinates.
type Stage string

const (
	Continent   Stage = "continent"
	Country     Stage = "country"
	Region      Stage = "region"
	City        Stage = "city"
	District    Stage = "district"
	Area        Stage = "area"
	Street      Stage = "street"
	Coordinates Stage = "coordinates"
)

// stageOrder is the play order.
var stageOrder = [...]Stage{Continent, Country, Region, City, District, Area, Street, Coordinates}

// Stages returns every stage in play order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder[:])

	return out
}

// Index is the 0-based play position of s, or -1 if s is unknown.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}

	return -1
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool { return s.Index() >= 0 }

// Next returns the stage played after s. ok is false after the last stage
// or for an unknown stage.
func (s Stage) Next() (next Stage, ok bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(stageOrder) {
		return "", false
	}

	return stageOrder[i+1], true
}

// Title is the capitalised stage name.
func (s Stage) Title() string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}

	return string(b)
}
