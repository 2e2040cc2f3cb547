package scene

// Color is an RGBA highlight value handed to the rendering collaborator.
type Color struct {
	R, G, B, A uint8
}

var (
	// NeutralColor matches the reference demo's grey idle material.
	NeutralColor = Color{R: 128, G: 128, B: 128, A: 128}
	// SelectedColor marks the single selected entity.
	SelectedColor = Color{R: 255, G: 0, B: 0, A: 255}
)

// PickResult is the outcome of one pointer action: zero candidates is a
// miss, one or more candidates are the entities whose geometry reported a
// hit. Candidate order carries no meaning; ties are broken by the
// registry's registration order.
type PickResult struct {
	Candidates []EntityID
}

func Miss() PickResult {
	return PickResult{}
}

func Hit(ids ...EntityID) PickResult {
	return PickResult{Candidates: ids}
}

// EntityColor is one entry of the per-entity highlight assignment.
type EntityColor struct {
	ID    EntityID
	Color Color
}

// DisplayState is the controller's only output: a full highlight
// assignment in registration order plus the optional side label.
type DisplayState struct {
	Selected    EntityID
	HasSelected bool
	Label       string
	Highlights  []EntityColor
}

// SelectionController owns the single selection for a session. Every pick
// event resets all highlights to neutral first, then marks at most one
// entity selected.
type SelectionController struct {
	registry *EntityRegistry
	model    WeightReader

	selected    EntityID
	hasSelected bool
}

func NewController(registry *EntityRegistry, model WeightReader) *SelectionController {
	return &SelectionController{registry: registry, model: model}
}

// Handle consumes one pick result and returns the next display state.
// Unknown candidate ids fall through to the cleared state silently.
func (c *SelectionController) Handle(pick PickResult) DisplayState {
	c.selected = 0
	c.hasSelected = false

	candidates := make(map[EntityID]bool, len(pick.Candidates))
	for _, id := range pick.Candidates {
		candidates[id] = true
	}

	state := DisplayState{Highlights: c.neutralHighlights()}
	if len(candidates) == 0 {
		return state
	}

	for i, id := range c.registry.Ordered() {
		if !candidates[id] {
			continue
		}
		role, ok := c.registry.Resolve(id)
		if !ok {
			continue
		}
		label, err := LabelFor(role, c.model)
		if err != nil {
			return state
		}
		c.selected = id
		c.hasSelected = true
		state.Selected = id
		state.HasSelected = true
		state.Label = label
		state.Highlights[i].Color = SelectedColor
		return state
	}
	return state
}

// Selected reports the current selection, if any.
func (c *SelectionController) Selected() (EntityID, bool) {
	return c.selected, c.hasSelected
}

func (c *SelectionController) neutralHighlights() []EntityColor {
	ordered := c.registry.Ordered()
	highlights := make([]EntityColor, len(ordered))
	for i, id := range ordered {
		highlights[i] = EntityColor{ID: id, Color: NeutralColor}
	}
	return highlights
}
