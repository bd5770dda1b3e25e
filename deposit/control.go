package deposit

import (
	"math"

	"github.com/katalvlaran/terrain/snapshot"
)

// DefaultControlRadius is the distance within which a main base controls a deposit.
const DefaultControlRadius = 10.0

// owner returns the first base closer than radius to the center of d.
func owner(d Deposit, bases []snapshot.Unit, radius float64) (snapshot.Unit, bool) {
	c := d.Center.Point()
	for _, b := range bases {
		if b.Distance(c) < radius {
			return b, true
		}
	}
	return snapshot.Unit{}, false
}

// Controlled returns the deposits whose center lies closer than radius to
// one of bases, in input order.
func Controlled(deposits []Deposit, bases []snapshot.Unit, radius float64) []Deposit {
	var out []Deposit
	for _, d := range deposits {
		if _, ok := owner(d, bases, radius); ok {
			out = append(out, d)
		}
	}
	return out
}

// NextExpansion returns the uncontrolled deposit closest to any of bases.
// Ties keep the earlier deposit. It reports false when bases is empty or
// every deposit is controlled.
func NextExpansion(deposits []Deposit, bases []snapshot.Unit, radius float64) (Deposit, bool) {
	var (
		best  Deposit
		found bool
		dist  = math.Inf(1)
	)
	for _, d := range deposits {
		if _, ok := owner(d, bases, radius); ok {
			continue
		}
		for _, b := range bases {
			if x := b.Distance(d.Center.Point()); x < dist {
				best, dist, found = d, x, true
			}
		}
	}
	return best, found
}

// FreeGeyser picks a vespene geyser in a controlled deposit that has no
// extractor on it. Deposits next to finished bases are preferred over those
// next to bases under construction.
func FreeGeyser(deposits []Deposit, bases, extractors []snapshot.Unit, radius float64) (snapshot.Unit, bool) {
	for _, built := range []bool{true, false} {
		for _, d := range deposits {
			b, ok := owner(d, bases, radius)
			if !ok || b.IsBuilt() != built {
				continue
			}
			for _, g := range d.Geysers() {
				if !covered(g, extractors) {
					return g, true
				}
			}
		}
	}
	return snapshot.Unit{}, false
}

func covered(g snapshot.Unit, extractors []snapshot.Unit) bool {
	for _, e := range extractors {
		if e.Distance(g.Pos) < 1 {
			return true
		}
	}
	return false
}
