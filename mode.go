package carousel

// Mode selects who owns the current index. It is either Controlled or
// Uncontrolled and is fixed for the lifetime of a Carousel.
type Mode interface {
	modeName() string
}

// Controlled hands index ownership to the caller. The carousel mirrors
// Active and reports navigation requests through OnNavigate; the caller
// answers with SetActiveIndex.
type Controlled struct {
	Active     Index
	OnNavigate func(Direction)
}

// Uncontrolled lets the carousel own its index, starting from Initial.
// OnSlideChange, when set, receives every new current index.
type Uncontrolled struct {
	Initial       Index
	OnSlideChange func(int)
}

func (Controlled) modeName() string   { return "controlled" }
func (Uncontrolled) modeName() string { return "uncontrolled" }
