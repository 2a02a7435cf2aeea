package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"study-buddy/backend/internal/apperr"
	"study-buddy/backend/internal/platform/logger"
)

// IPRateLimiter manages per-IP rate limiting
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		rate:  r,
		burst: burst,
	}
}

// GetLimiter returns the rate limiter for a given IP
func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	limiter, _ := l.limiters.LoadOrStore(ip, rate.NewLimiter(l.rate, l.burst))
	return limiter.(*rate.Limiter)
}

// retryAfter is the wait in whole seconds until ip may send again.
func (l *IPRateLimiter) retryAfter(ip string) int {
	r := l.GetLimiter(ip).Reserve()
	delay := r.Delay()
	r.Cancel()
	return int(math.Ceil(delay.Seconds()))
}

// DailyQuota caps the total number of model calls per day across all clients.
// A limit of zero or less disables the quota.
type DailyQuota struct {
	count   int64
	limit   int64
	resetAt time.Time
	now     func() time.Time
	log     *logger.Logger
	mu      sync.Mutex
}

// NewDailyQuota creates a new daily quota manager
func NewDailyQuota(limit int64, log *logger.Logger) *DailyQuota {
	if log == nil {
		log = logger.Nop()
	}
	q := &DailyQuota{limit: limit, now: time.Now, log: log}
	q.resetAt = nextMidnightPT(q.now())
	return q
}

// Allow checks if a request is allowed and increments the counter
func (q *DailyQuota) Allow() bool {
	_, ok := q.charge()
	return ok
}

// charge is Allow that also returns the window the request was counted in,
// so a refund after a reset is ignored.
func (q *DailyQuota) charge() (time.Time, bool) {
	if q.limit <= 0 {
		return time.Time{}, true
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	if now.After(q.resetAt) {
		q.log.Info("daily quota reset", "previous_count", q.count)
		q.count = 0
		q.resetAt = nextMidnightPT(now)
	}

	if q.count >= q.limit {
		return q.resetAt, false
	}
	q.count++
	return q.resetAt, true
}

// refund returns one unit charged in window.
func (q *DailyQuota) refund(window time.Time) {
	if q.limit <= 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.resetAt.Equal(window) && q.count > 0 {
		q.count--
	}
}

// Remaining returns the remaining quota
func (q *DailyQuota) Remaining() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.limit - q.count
}

// Count returns the current count
func (q *DailyQuota) Count() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

func (q *DailyQuota) secondsUntilReset() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int(math.Ceil(q.resetAt.Sub(q.now()).Seconds()))
}

// nextMidnightPT returns the next midnight in Pacific Time (Gemini API reset time)
func nextMidnightPT(from time.Time) time.Time {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		loc = time.UTC
	}
	now := from.In(loc)
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)
}

// RateLimitMiddleware applies the per-IP limiter first and then the global
// daily quota, so a throttled client never spends the shared budget. Either
// rejection answers 429 with Retry-After. Requests the handler rejects
// without calling the model (4xx other than 429) are refunded.
func RateLimitMiddleware(ipLimiter *IPRateLimiter, quota *DailyQuota) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ipLimiter != nil {
			ip := c.ClientIP()
			if !ipLimiter.GetLimiter(ip).Allow() {
				rejectRateLimited(c, ipLimiter.retryAfter(ip),
					"Too many requests. Please slow down and try again shortly.")
				return
			}
		}

		if quota == nil {
			c.Next()
			return
		}

		window, ok := quota.charge()
		if !ok {
			rejectRateLimited(c, quota.secondsUntilReset(),
				"The daily study quota has been used up. Please come back tomorrow.")
			return
		}

		c.Next()

		if neverReachedModel(c.Writer.Status()) {
			quota.refund(window)
		}
	}
}

// neverReachedModel reports client errors raised before the completion call.
// Model failures surface as 429, 502 or 504.
func neverReachedModel(status int) bool {
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError &&
		status != http.StatusTooManyRequests
}

func rejectRateLimited(c *gin.Context, retryAfter int, message string) {
	if retryAfter < 1 {
		retryAfter = 1
	}
	c.Header("Retry-After", strconv.Itoa(retryAfter))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":      message,
		"code":       apperr.CodeRateLimit,
		"retryAfter": retryAfter,
	})
}
