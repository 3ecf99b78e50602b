package urock

import "testing"

func TestPickWinnerMostUpstream(t *testing.T) {
	candidates := []CellCandidate{
		{WindFactor: WindFactor{YWall: 5, Height: 10, Priority: ZoneDisplacement, SourceID: "a"}},
		{WindFactor: WindFactor{YWall: 15, Height: 10, Priority: ZoneDisplacement, SourceID: "b"}},
	}
	winner, ok := pickWinner(candidates, nil)
	if !ok {
		t.Fatal("expected a winner")
	}
	if winner.SourceID != "b" {
		t.Errorf("winner = %s, want b (max y_wall)", winner.SourceID)
	}
}

func TestPickWinnerTieBrokenByHeight(t *testing.T) {
	candidates := []CellCandidate{
		{WindFactor: WindFactor{YWall: 5, Height: 10, Priority: ZoneDisplacement, SourceID: "short"}},
		{WindFactor: WindFactor{YWall: 5, Height: 20, Priority: ZoneDisplacement, SourceID: "tall"}},
	}
	winner, ok := pickWinner(candidates, nil)
	if !ok {
		t.Fatal("expected a winner")
	}
	if winner.SourceID != "tall" {
		t.Errorf("winner = %s, want tall (tie-break by height)", winner.SourceID)
	}
}

func TestPickWinnerTieBrokenByZonePriority(t *testing.T) {
	candidates := []CellCandidate{
		{WindFactor: WindFactor{YWall: 5, Height: 10, Priority: ZoneDisplacement, SourceID: "disp"}},
		{WindFactor: WindFactor{YWall: 5, Height: 10, Priority: ZoneStreetCanyon, SourceID: "canyon"}},
	}
	winner, ok := pickWinner(candidates, nil)
	if !ok {
		t.Fatal("expected a winner")
	}
	if winner.SourceID != "canyon" {
		t.Errorf("winner = %s, want canyon (street-canyon has rank 1)", winner.SourceID)
	}
}

func TestResolveCellAppliesWakeWhenUpstreamAndTaller(t *testing.T) {
	priority := []CellCandidate{
		{WindFactor: WindFactor{MU: 1, MV: 1, MW: 1, YWall: 5, Height: 10, Priority: ZoneDisplacement, SourceID: "p"}},
	}
	wake := []CellCandidate{
		{WindFactor: WindFactor{MU: 0.5, MW: 0.5, YWall: 10, Height: 20, Priority: ZoneWake, SourceID: "w"}},
	}
	resolved, ok := ResolveCell(priority, wake, 1, nil)
	if !ok {
		t.Fatal("expected a resolved wind factor")
	}
	if resolved.MU != 0.5 {
		t.Errorf("m_u = %v, want 0.5 (wake applied)", resolved.MU)
	}
	if resolved.RefHeight != RefPointHeight {
		t.Errorf("ref height = %v, want RefPointHeight after wake multiplication", resolved.RefHeight)
	}
}

func TestResolveCellVegetationFactor(t *testing.T) {
	priority := []CellCandidate{
		{WindFactor: WindFactor{MU: 1, MV: 1, MW: 1, YWall: 5, Height: 10, Priority: ZoneDisplacement, SourceID: "p"}},
	}
	resolved, ok := ResolveCell(priority, nil, 0.4, nil)
	if !ok {
		t.Fatal("expected a resolved wind factor")
	}
	if resolved.MU != 0.4 {
		t.Errorf("m_u = %v, want 0.4 (vegetation factor applied)", resolved.MU)
	}
}
