package core

// Sort is a lightweight category tag for symbolic constants. Two symbols are
// interchangeable only if they are the same singleton; sorts exist to group
// and document them, never to drive structural decomposition.
type Sort struct {
	name string
}

// NewSort declares a named sort.
func NewSort(name string) *Sort { return &Sort{name: name} }

// Name returns the sort's name.
func (s *Sort) Name() string { return s.name }

// Individual declares a named singleton symbol of this sort. Each call
// creates a distinct identity; declare individuals once at package scope.
func (s *Sort) Individual(name string) *Symbol {
	return &Symbol{name: name, sort: s}
}

// Symbol is a named singleton constant. Equality is by identity (pointer),
// never by name comparison across sorts.
type Symbol struct {
	name string
	sort *Sort
}

// Name returns the symbol's name as used in term text.
func (s *Symbol) Name() string { return s.name }

// Sort returns the sort the symbol belongs to.
func (s *Symbol) Sort() *Sort { return s.sort }

func (s *Symbol) String() string { return s.name }

// ICM feedback levels.
var (
	ICMLevelSort  = NewSort("ICMLevel")
	Understanding = ICMLevelSort.Individual("understanding")
	Acceptance    = ICMLevelSort.Individual("acceptance")
)

// Feedback polarity.
var (
	PolaritySort = NewSort("Polarity")
	Positive     = PolaritySort.Individual("positive")
	Negative     = PolaritySort.Individual("negative")
)

// Hedge levels qualifying asserted content by confidence.
var (
	HedgeSort = NewSort("Hedge")
	Strong    = HedgeSort.Individual("strong")
	Medium    = HedgeSort.Individual("medium")
	Weak      = HedgeSort.Individual("weak")
)
