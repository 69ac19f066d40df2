package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type callerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserLimiter keeps one token bucket per caller. Authenticated callers are
// keyed by login, anonymous ones by remote IP. Buckets idle for longer than
// limiterIdleTTL are dropped on the next sweep.
type UserLimiter struct {
	mu        sync.Mutex
	callers   map[string]*callerLimiter
	r         rate.Limit
	b         int
	now       func() time.Time
	lastSweep time.Time
}

func NewUserRateLimiter(r rate.Limit, b int) *UserLimiter {
	return &UserLimiter{
		callers:   make(map[string]*callerLimiter),
		r:         r,
		b:         b,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

// reserve takes a token for key. When none is available it returns how long
// the caller should wait.
func (u *UserLimiter) reserve(key string) (bool, time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	if now.Sub(u.lastSweep) > limiterIdleTTL {
		for k, c := range u.callers {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(u.callers, k)
			}
		}
		u.lastSweep = now
	}

	c, exists := u.callers[key]
	if !exists {
		c = &callerLimiter{limiter: rate.NewLimiter(u.r, u.b)}
		u.callers[key] = c
	}
	c.lastSeen = now

	res := c.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, 0
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (u *UserLimiter) size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.callers)
}

func callerKey(r *http.Request) string {
	if session, ok := GetSession(r.Context()); ok {
		return "user:" + session.Login
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}

func RateLimitMiddleware(limiter *UserLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ok, wait := limiter.reserve(callerKey(r)); !ok {
				if wait > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds()+0.999)))
				}
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
