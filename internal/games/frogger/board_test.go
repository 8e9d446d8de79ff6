package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

func TestBoardHomeRowFollowsConfig(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	if b := NewBoard(cfg); b.HomeRow != 0 {
		t.Errorf("default home row = %d, want 0", b.HomeRow)
	}

	// A board with an extra row above the goal still tracks the shifted
	// home row from the lane list.
	shifted := config.DefaultFroggerConfig()
	for i := range shifted.Lanes {
		shifted.Lanes[i].Row++
	}
	b := NewBoard(shifted)
	if b.HomeRow != 1 {
		t.Errorf("shifted home row = %d, want 1", b.HomeRow)
	}
	if b.Specs[b.HomeRow].Type != LaneHome {
		t.Errorf("home row type = %v, want %v", b.Specs[b.HomeRow].Type, LaneHome)
	}
	if b.Specs[0].Type != LaneSafe {
		t.Errorf("unlisted row 0 should default to safe, got %v", b.Specs[0].Type)
	}
}
