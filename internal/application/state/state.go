// Package state names the states of the menu screen state machines.
package state

// MainMenuState represents the current state of the main menu
type MainMenuState int

const (
	MainMenuJustEntered MainMenuState = iota
	MainMenuGoingToInvisible
	MainMenuReachedInvisible
	MainMenuLeaveFadePrompt
	MainMenuGoingToOpaque
	MainMenuReachedOpaque
)

// String returns the string representation of the main menu state
func (s MainMenuState) String() string {
	switch s {
	case MainMenuJustEntered:
		return "JUST_ENTERED"
	case MainMenuGoingToInvisible:
		return "GOING_TO_INVISIBLE"
	case MainMenuReachedInvisible:
		return "REACHED_INVISIBLE"
	case MainMenuLeaveFadePrompt:
		return "LEAVE_FADE_PROMPT"
	case MainMenuGoingToOpaque:
		return "GOING_TO_OPAQUE"
	case MainMenuReachedOpaque:
		return "REACHED_OPAQUE"
	default:
		return "UNKNOWN"
	}
}

// OptionsMenuState represents the current state of the options menu
type OptionsMenuState int

const (
	OptionsJustEntered OptionsMenuState = iota
	OptionsGoingToOpaque
	OptionsReachedOpaque
	OptionsGoingToInvisible
	OptionsReachedInvisible
	OptionsRebind
)

// String returns the string representation of the options menu state
func (s OptionsMenuState) String() string {
	switch s {
	case OptionsJustEntered:
		return "JUST_ENTERED"
	case OptionsGoingToOpaque:
		return "GOING_TO_OPAQUE"
	case OptionsReachedOpaque:
		return "REACHED_OPAQUE"
	case OptionsGoingToInvisible:
		return "GOING_TO_INVISIBLE"
	case OptionsReachedInvisible:
		return "REACHED_INVISIBLE"
	case OptionsRebind:
		return "REBIND"
	default:
		return "UNKNOWN"
	}
}
