package energy

import "testing"

func TestParseGoalLevel(t *testing.T) {
	cases := []struct {
		in     string
		want   GoalLevel
		wantOK bool
	}{
		{"cut", Cut, true},
		{"aggressiveCut", AggressiveCut, true},
		{"agressiveCut", AggressiveCut, true},
		{"aggressive_cut", AggressiveCut, true},
		{" Maintain ", Maintain, true},
		{"leanBulk", LeanBulk, true},
		{"lean_bulk", LeanBulk, true},
		{"BULK", Bulk, true},
		{"", Maintain, false},
		{"shred", Maintain, false},
	}
	for _, tc := range cases {
		got, ok := ParseGoalLevel(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseGoalLevel(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseActivityLevel(t *testing.T) {
	cases := []struct {
		in     string
		want   ActivityLevel
		wantOK bool
	}{
		{"sedentary", Sedentary, true},
		{"light", Light, true},
		{"moderate", Moderate, true},
		{"active", Active, true},
		{"veryActive", VeryActive, true},
		{"veryactive", VeryActive, true},
		{"very_active", VeryActive, true},
		{"", Moderate, false},
		{"couch", Moderate, false},
	}
	for _, tc := range cases {
		got, ok := ParseActivityLevel(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseActivityLevel(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseSex(t *testing.T) {
	cases := []struct {
		in     string
		want   Sex
		wantOK bool
	}{
		{"male", Male, true},
		{"F", Female, true},
		{"Female", Female, true},
		{"", Male, false},
		{"other", Male, false},
	}
	for _, tc := range cases {
		got, ok := ParseSex(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseSex(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

// TestLevelTablesComplete guards against adding an enum value without a
// multiplier or label.
func TestLevelTablesComplete(t *testing.T) {
	for _, a := range ActivityLevels {
		if _, ok := ActivityMultiplier(a); !ok {
			t.Errorf("activity %q has no multiplier", a)
		}
		if ActivityLabel(a) == "" {
			t.Errorf("activity %q has no label", a)
		}
	}
	for _, g := range GoalLevels {
		if _, ok := GoalMultiplier(g); !ok {
			t.Errorf("goal %q has no multiplier", g)
		}
		if GoalLabel(g) == "" || GoalOptionLabel(g) == "" {
			t.Errorf("goal %q has no label", g)
		}
	}
	for _, s := range Sexes {
		if SexLabel(s) == "" {
			t.Errorf("sex %q has no label", s)
		}
	}
}

func TestMultipliers(t *testing.T) {
	wantActivity := map[ActivityLevel]float64{
		Sedentary: 1.2, Light: 1.375, Moderate: 1.55, Active: 1.725, VeryActive: 1.9,
	}
	for a, want := range wantActivity {
		if got, _ := ActivityMultiplier(a); got != want {
			t.Errorf("ActivityMultiplier(%q) = %v, want %v", a, got, want)
		}
	}
	wantGoal := map[GoalLevel]float64{
		Cut: 0.85, AggressiveCut: 0.70, Maintain: 1.0, LeanBulk: 1.10, Bulk: 1.20,
	}
	for g, want := range wantGoal {
		if got, _ := GoalMultiplier(g); got != want {
			t.Errorf("GoalMultiplier(%q) = %v, want %v", g, got, want)
		}
	}
	if _, ok := GoalMultiplier("agressiveCut"); ok {
		t.Error("GoalMultiplier accepted the legacy spelling; only ParseGoalLevel should")
	}
}

func TestGoalLabel(t *testing.T) {
	if got := GoalLabel(AggressiveCut); got != "Aggressive Cutting" {
		t.Errorf("GoalLabel(aggressiveCut) = %q", got)
	}
	if got := GoalOptionLabel(LeanBulk); got != "Lean Bulking (+300 kcal)" {
		t.Errorf("GoalOptionLabel(leanBulk) = %q", got)
	}
	if got := GoalLabel("nope"); got != "" {
		t.Errorf("GoalLabel(unknown) = %q, want empty", got)
	}
}
