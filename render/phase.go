package render

// Phase groups renderers into fixed passes. Lower values draw first
type Phase uint8

const (
	PhaseSprite Phase = iota
	PhaseMesh
	PhaseOverlay
)

func (p Phase) String() string {
	switch p {
	case PhaseSprite:
		return "sprite"
	case PhaseMesh:
		return "mesh"
	case PhaseOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}
