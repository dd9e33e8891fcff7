package core

// BudgetProgress describes how far a goal's spending has advanced toward
// its limit. The display treatment (color, urgency) is a deterministic
// function of IsOver.
type BudgetProgress struct {
	Percent float64
	IsOver  bool
}

// Progress reports spending progress for a goal. Percent is clamped to
// [0, 100]; a zero limit yields 0% rather than dividing by zero, though
// such a goal is still flagged over budget when anything was spent.
func (g BudgetGoal) Progress() BudgetProgress {
	p := BudgetProgress{IsOver: g.Spent.Cents > g.Limit.Cents}
	if g.Limit.Cents <= 0 {
		return p
	}
	percent := float64(g.Spent.Cents) / float64(g.Limit.Cents) * 100
	if percent > 100 {
		percent = 100
	}
	p.Percent = percent
	return p
}
