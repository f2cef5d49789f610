package engine

import "testing"

func TestAdvanceKeyStatesNewKeyBecomesDown(t *testing.T) {
	states := map[Key]KeyState{}
	advanceKeyStates(states, map[Key]struct{}{1: {}})
	if states[1] != KeyDown {
		t.Fatalf("got %v, want KeyDown", states[1])
	}
}

func TestAdvanceKeyStatesHeldKeyBecomesPressed(t *testing.T) {
	states := map[Key]KeyState{1: KeyDown}
	advanceKeyStates(states, map[Key]struct{}{1: {}})
	if states[1] != KeyPressed {
		t.Fatalf("got %v, want KeyPressed", states[1])
	}
}

func TestAdvanceKeyStatesReleasedKeyBecomesUpThenForgotten(t *testing.T) {
	states := map[Key]KeyState{1: KeyPressed}
	advanceKeyStates(states, map[Key]struct{}{})
	if states[1] != KeyUp {
		t.Fatalf("got %v, want KeyUp", states[1])
	}
	advanceKeyStates(states, map[Key]struct{}{})
	if _, tracked := states[1]; tracked {
		t.Fatal("key should be forgotten one tick after KeyUp")
	}
}

func TestAdvanceKeyStatesQuickTapStillReportsUp(t *testing.T) {
	states := map[Key]KeyState{}
	advanceKeyStates(states, map[Key]struct{}{1: {}})
	if states[1] != KeyDown {
		t.Fatalf("first tick: got %v, want KeyDown", states[1])
	}
	advanceKeyStates(states, map[Key]struct{}{})
	if states[1] != KeyUp {
		t.Fatalf("second tick: got %v, want KeyUp", states[1])
	}
}
