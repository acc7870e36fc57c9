package service

import (
	"time"

	"github.com/notmobil/backend/ai"
	"github.com/notmobil/backend/cache"
	"github.com/notmobil/backend/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	AccessTokenTTL  = 1 * time.Hour
	RefreshTokenTTL = 24 * time.Hour
)

type Service struct {
	Store     store.NoteStore
	Cache     cache.SummaryCache // nil disables summary caching
	AI        ai.Gateway
	JWTSecret []byte

	// AITimeout bounds a single upstream summarize call; aiLimiter sheds
	// upstream load to the local fallback, it never queues.
	AITimeout time.Duration
	aiLimiter *rate.Limiter

	log *logrus.Entry
}

func NewService(
	noteStore store.NoteStore,
	summaryCache cache.SummaryCache,
	aiGateway ai.Gateway,
	jwtSecret []byte,
	aiTimeout time.Duration,
	aiRateLimit float64,
	aiRateBurst int,
) *Service {
	return &Service{
		Store:     noteStore,
		Cache:     summaryCache,
		AI:        aiGateway,
		JWTSecret: jwtSecret,
		AITimeout: aiTimeout,
		aiLimiter: rate.NewLimiter(rate.Limit(aiRateLimit), aiRateBurst),
		log:       logrus.WithField("component", "service"),
	}
}
