package searcher

import "math"

// uct scores the children of one parent, ln(N) is computed once per selection step.
type uct struct {
	exploration float64
	logParent   float64
}

func newUCT(exploration float64, parentVisits int) uct {
	if parentVisits < 1 {
		panic("parent must be visited before scoring its children")
	}
	return uct{exploration: exploration, logParent: math.Log(float64(parentVisits))}
}

// score is mean + C*sqrt(ln(N)/n), unvisited children have no score.
func (u uct) score(rewards float64, visits int) float64 {
	if visits < 1 {
		panic("unvisited child has no UCT score")
	}
	n := float64(visits)
	return rewards/n + u.exploration*math.Sqrt(u.logParent/n)
}

// UCT scores a child with the given statistics under a parent visited parentVisits times.
// childVisits and parentVisits must be positive.
func UCT(rewards float64, childVisits, parentVisits int, exploration float64) float64 {
	return newUCT(exploration, parentVisits).score(rewards, childVisits)
}
