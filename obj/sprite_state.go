package obj

// motionType is the discrete animation category derived from physical state.
type motionType int

const (
	standing motionType = iota
	walking
	jumping
	falling
	interacting
	numMotionTypes
)

type horizontalFacing int

const (
	facingLeft horizontalFacing = iota
	facingRight
	numHorizontalFacings
)

type verticalFacing int

const (
	facingUp verticalFacing = iota
	facingHorizontal
	facingDown
	numVerticalFacings
)

// spriteState keys the player's sprite map. It is a comparable struct so the
// full cross-product of the state space can be populated at construction and
// looked up without allocation.
type spriteState struct {
	motion     motionType
	horizontal horizontalFacing
	vertical   verticalFacing
}

// allSpriteStates enumerates motion x horizontal x vertical exhaustively.
func allSpriteStates() []spriteState {
	states := make([]spriteState, 0, int(numMotionTypes)*int(numHorizontalFacings)*int(numVerticalFacings))
	for motion := motionType(0); motion < numMotionTypes; motion++ {
		for h := horizontalFacing(0); h < numHorizontalFacings; h++ {
			for v := verticalFacing(0); v < numVerticalFacings; v++ {
				states = append(states, spriteState{motion: motion, horizontal: h, vertical: v})
			}
		}
	}
	return states
}
