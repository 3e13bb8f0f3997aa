package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"language-assistant/internal/qna"
	pkgLog "language-assistant/pkg/log"
)

// CacheConfig sizes the answer cache. Size 0 disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	answerer qna.Answerer
	cache    *expirable.LRU[string, []qna.Answer]
}

// New creates a new Q&A UseCase instance.
func New(l pkgLog.Logger, answerer qna.Answerer, cacheCfg CacheConfig) qna.UseCase {
	uc := &implUseCase{
		l:        l,
		answerer: answerer,
	}
	if cacheCfg.Size > 0 {
		uc.cache = expirable.NewLRU[string, []qna.Answer](cacheCfg.Size, nil, cacheCfg.TTL)
	}
	return uc
}
