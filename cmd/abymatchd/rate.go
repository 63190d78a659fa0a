// Copyright 2026 Abydos Authors.
// All rights reserved.

package main

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/fossabot/abydos/cache"
)

// rateMap is a wrapper around cache.LRU that simplifies rate-limiting requests.
type rateMap struct {
	lru   *cache.LRU[*rate.Limiter]
	limit rate.Limit // per-key token refill rate
	burst int        // per-key bucket size
}

// newRateMap returns a new rateMap that lets each client make burst requests
// right away and qps requests per second after that. size is the maximum
// number of clients tracked; a client evicted after not being seen for a
// while starts over with a full bucket.
func newRateMap(qps float64, burst, size int) *rateMap {
	return &rateMap{cache.NewLRU[*rate.Limiter](size), rate.Limit(qps), burst}
}

// attempt should be called in response to a request from key at now.
// It returns false if the request should be rejected.
func (rm *rateMap) attempt(key string, now time.Time) bool {
	lim := rm.lru.GetOrSet(key, func() *rate.Limiter {
		return rate.NewLimiter(rm.limit, rm.burst)
	})
	return lim.AllowN(now, 1)
}
