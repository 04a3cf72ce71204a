// Package race counts the button hold times that beat a boat race record.
//
// Holding the button for x of the race's T milliseconds covers x*(T-x)
// millimetres, so winning holds are the integers with x*(T-x) > D, which is
// the closed interval between the roots of x² - T·x + (D+1) = 0.
package race

import (
	"math/big"
)

// Race is one entry on the race sheet.
type Race struct {
	Time   uint64
	Record uint64
}

// Beats reports whether holding for hold ms travels strictly farther than
// the record.
func (r Race) Beats(hold uint64) bool {
	if hold > r.Time {
		return false
	}
	var p big.Int
	p.Mul(new(big.Int).SetUint64(hold), new(big.Int).SetUint64(r.Time-hold))
	return p.Cmp(new(big.Int).SetUint64(r.Record)) > 0
}

// WinningHolds returns the inclusive range of hold times that beat the
// record, using the closed form ceil((T-√Δ)/2) .. floor((T+√Δ)/2) with
// Δ = T² - 4(D+1). The arithmetic is exact: since the bounds are integers,
// rounding √Δ down to s gives the same bounds as the real root. ok is false
// when no hold time wins.
func (r Race) WinningHolds() (low, high uint64, ok bool) {
	t := new(big.Int).SetUint64(r.Time)

	c := new(big.Int).SetUint64(r.Record)
	c.Add(c, big.NewInt(1))
	c.Lsh(c, 2)

	delta := new(big.Int).Mul(t, t)
	delta.Sub(delta, c)
	if delta.Sign() < 0 {
		return 0, 0, false
	}
	s := new(big.Int).Sqrt(delta)

	// ceil((t-s)/2); t >= s because delta <= t².
	lo := new(big.Int).Sub(t, s)
	lo.Add(lo, big.NewInt(1))
	lo.Rsh(lo, 1)

	hi := new(big.Int).Add(t, s)
	hi.Rsh(hi, 1)

	if lo.Cmp(hi) > 0 {
		return 0, 0, false
	}
	return lo.Uint64(), hi.Uint64(), true
}

// Ways is the number of distinct winning hold times.
func (r Race) Ways() uint64 {
	low, high, ok := r.WinningHolds()
	if !ok {
		return 0
	}
	return high - low + 1
}

// WinningHoldsSearch finds the same range as WinningHolds with integer
// comparisons only. Distance is symmetric around T/2 and increases up to it,
// so the lower bound is the first winning hold in [0, T/2] and the upper
// bound mirrors it.
func (r Race) WinningHoldsSearch() (low, high uint64, ok bool) {
	mid := r.Time / 2
	if !r.Beats(mid) {
		return 0, 0, false
	}
	lo, hi := uint64(0), mid
	for lo < hi {
		m := lo + (hi-lo)/2
		if r.Beats(m) {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return lo, r.Time - lo, true
}
