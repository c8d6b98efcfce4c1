package component

import (
	"testing"

	"wizard-td/pkg/gridmap"
)

func TestPlaceholder_UpgradeAndDowngrade(t *testing.T) {
	p := NewPlaceholder(testParams())

	if !p.Upgrade(TrackRange) {
		t.Fatal("first raise must apply")
	}
	if p.Range != 128 || p.BuildCost != 120 || p.Level(TrackRange) != 1 {
		t.Errorf("after raise: range=%v cost=%v level=%d", p.Range, p.BuildCost, p.Level(TrackRange))
	}
	if p.Upgrade(TrackRange) {
		t.Error("placeholder tracks stop at level 1")
	}
	if !p.Downgrade(TrackRange) {
		t.Fatal("downgrade must apply")
	}
	if p.Range != 96 || p.BuildCost != 100 || p.Level(TrackRange) != 0 {
		t.Errorf("after downgrade: range=%v cost=%v level=%d", p.Range, p.BuildCost, p.Level(TrackRange))
	}
	if p.Downgrade(TrackRange) {
		t.Error("level 0 cannot be lowered")
	}
}

func TestPlaceholder_TierAndCost(t *testing.T) {
	p := NewPlaceholder(testParams())
	for _, track := range Tracks {
		p.Upgrade(track)
	}
	if p.Tier != 2 || p.BuildCost != 160 {
		t.Errorf("Expected tier 2 cost 160, got tier %d cost %v", p.Tier, p.BuildCost)
	}
	if p.FiringSpeed != 1.5 || p.Damage != 60 {
		t.Errorf("unexpected stats: speed=%v damage=%v", p.FiringSpeed, p.Damage)
	}
	p.Downgrade(TrackDamage)
	if p.Tier != 1 {
		t.Errorf("Expected tier 1 after downgrade, got %d", p.Tier)
	}

	p.Reset()
	if p.BuildCost != 100 || p.Level(TrackRange) != 0 || p.Visible {
		t.Errorf("Reset must restore the base tower, got %+v", p)
	}
}

func TestPlaceholder_ShowHide(t *testing.T) {
	p := NewPlaceholder(testParams())
	p.Show(gridmap.Cell{X: 2, Y: 3})
	if !p.Visible || p.Position != (Position{X: 80, Y: 112}) {
		t.Errorf("Expected visible at (80,112), got %+v", p.Position)
	}
	p.Hide()
	if p.Visible {
		t.Error("Hide must hide the placeholder")
	}
}
