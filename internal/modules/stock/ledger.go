package stock

import (
	"fmt"
	"sync"
)

// MaxShopCapacityKg is the storage ceiling of a ration shop pool. The
// warehouse pool has no declared ceiling.
const MaxShopCapacityKg = 2000

// InsufficientError rejects a deduction that exceeds the pool's holdings.
type InsufficientError struct {
	Pool      PoolID
	Commodity Commodity
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("Insufficient %s stock", e.Commodity.Display())
}

// CapacityError rejects an acceptance that would push a pool over its ceiling.
type CapacityError struct {
	Pool      PoolID
	Commodity Commodity
	Capacity  float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Accepting %s pushes inventory over the %.0fkg limit", e.Commodity.Display(), e.Capacity)
}

// Ledger is the in-memory stock snapshot the reconciliation driver validates
// and optimistically mutates before the authoritative store is written. It is
// rebuilt from the store on every re-fetch; last full re-read wins.
type Ledger struct {
	mu    sync.RWMutex
	pools map[PoolID]map[Commodity]float64
	caps  map[PoolID]float64
}

// NewLedger creates an empty ledger with the shop capacity ceiling applied.
func NewLedger() *Ledger {
	return &Ledger{
		pools: map[PoolID]map[Commodity]float64{
			PoolWarehouse: {},
			PoolShop:      {},
		},
		caps: map[PoolID]float64{PoolShop: MaxShopCapacityKg},
	}
}

// Get returns the held kg for a commodity at a pool.
func (l *Ledger) Get(pool PoolID, c Commodity) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pools[pool][c]
}

// Set overwrites a pool quantity with an authoritative value.
func (l *Ledger) Set(pool PoolID, c Commodity, kg float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pools[pool] == nil {
		l.pools[pool] = map[Commodity]float64{}
	}
	l.pools[pool][c] = kg
}

// Adjust applies a delta to a pool quantity, clamped to a floor of 0, and
// returns the new quantity. Excess decrement clamps rather than failing.
func (l *Ledger) Adjust(pool PoolID, c Commodity, delta float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pools[pool] == nil {
		l.pools[pool] = map[Commodity]float64{}
	}
	next := l.pools[pool][c] + delta
	if next < 0 {
		next = 0
	}
	l.pools[pool][c] = next
	return next
}

// Capacity reports the pool's ceiling, if one is declared.
func (l *Ledger) Capacity(pool PoolID) (float64, bool) {
	ceil, ok := l.caps[pool]
	return ceil, ok
}

// CanAccept reports whether the pool can take added kg of a commodity
// without breaching its capacity ceiling. Pools without a ceiling always
// accept.
func (l *Ledger) CanAccept(pool PoolID, c Commodity, added float64) bool {
	ceil, ok := l.caps[pool]
	if !ok {
		return true
	}
	return l.Get(pool, c)+added <= ceil
}

// CheckDeduct validates that the pool holds at least the demanded quantity
// for each commodity independently. The first shortfall rejects the whole
// operation so no partial deduction can occur.
func (l *Ledger) CheckDeduct(pool PoolID, demand map[Commodity]float64) error {
	for _, c := range Commodities {
		if demand[c] > l.Get(pool, c) {
			return &InsufficientError{Pool: pool, Commodity: c}
		}
	}
	return nil
}

// CheckAccept validates that the combined post-acceptance quantity for each
// commodity stays within the pool's ceiling. Any breach rejects the entire
// acceptance.
func (l *Ledger) CheckAccept(pool PoolID, incoming map[Commodity]float64) error {
	ceil, ok := l.caps[pool]
	if !ok {
		return nil
	}
	for _, c := range Commodities {
		if l.Get(pool, c)+incoming[c] > ceil {
			return &CapacityError{Pool: pool, Commodity: c, Capacity: ceil}
		}
	}
	return nil
}
