package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notmobil/backend/cache"
	"github.com/notmobil/backend/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Long enough that the fallback summarizer actually condenses it, so a
// fallback result is distinguishable from a gateway result.
const summarizeInput = "Bugün sabah erkenden kalkıp uzun bir yürüyüş yaptım ve hava gerçekten çok güzeldi. " +
	"Öğleden sonra toplantı için ofise gittim ve proje hakkında uzun uzun konuştuk. " +
	"Akşam eve dönerken markete uğrayıp haftalık alışverişi tamamladım. " +
	"Yemekten sonra ailemle birlikte oturup eski fotoğraflara baktık. " +
	"Gece yatmadan önce kitabımın son bölümünü bitirdim."

func TestSummarize_GatewayResultCached(t *testing.T) {
	svc, _, mockCache, mockAI := setupService(t)
	ctx := context.Background()

	mockCache.On("GetSummary", ctx, mock.Anything).Return("", cache.ErrCacheMiss)
	mockAI.On("Summarize", mock.Anything, summarizeInput, "").Return("AI özeti", nil)
	mockCache.On("SetSummary", ctx, mock.Anything, "AI özeti").Return(nil)

	summary := svc.Summarize(ctx, summarizeInput, "")
	assert.Equal(t, "AI özeti", summary)

	mockAI.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestSummarize_CacheHitSkipsGateway(t *testing.T) {
	svc, _, mockCache, mockAI := setupService(t)
	ctx := context.Background()

	mockCache.On("GetSummary", ctx, mock.Anything).Return("önbellekteki özet", nil)

	summary := svc.Summarize(ctx, summarizeInput, "")
	assert.Equal(t, "önbellekteki özet", summary)

	mockAI.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummarize_GatewayFailureFallsBack(t *testing.T) {
	svc, _, mockCache, mockAI := setupService(t)
	ctx := context.Background()

	mockCache.On("GetSummary", ctx, mock.Anything).Return("", cache.ErrCacheMiss)
	mockAI.On("Summarize", mock.Anything, summarizeInput, "").Return("", errors.New("quota exceeded"))

	summary := svc.Summarize(ctx, summarizeInput, "")
	assert.Equal(t, service.FallbackSummarize(summarizeInput), summary)

	// Fallback output is never cached
	mockCache.AssertNotCalled(t, "SetSummary", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummarize_CacheFailureIsNotFatal(t *testing.T) {
	svc, _, mockCache, mockAI := setupService(t)
	ctx := context.Background()

	mockCache.On("GetSummary", ctx, mock.Anything).Return("", errors.New("redis down"))
	mockAI.On("Summarize", mock.Anything, summarizeInput, "").Return("AI özeti", nil)
	mockCache.On("SetSummary", ctx, mock.Anything, "AI özeti").Return(errors.New("redis down"))

	summary := svc.Summarize(ctx, summarizeInput, "")
	assert.Equal(t, "AI özeti", summary)
}

func TestSummarize_NilCacheAndGateway(t *testing.T) {
	svc := service.NewService(nil, nil, nil, []byte("test-secret"), time.Second, 1000, 1000)

	summary := svc.Summarize(context.Background(), summarizeInput, "")
	assert.Equal(t, service.FallbackSummarize(summarizeInput), summary)
}

func TestSummarize_RateLimitedFallsBack(t *testing.T) {
	_, _, _, mockAI := setupService(t)

	// Zero rate and burst: the limiter denies every request
	svc := service.NewService(nil, nil, mockAI, []byte("test-secret"), time.Second, 0, 0)

	summary := svc.Summarize(context.Background(), summarizeInput, "")
	assert.Equal(t, service.FallbackSummarize(summarizeInput), summary)

	mockAI.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummarize_PerRequestKeyForwarded(t *testing.T) {
	svc, _, mockCache, mockAI := setupService(t)
	ctx := context.Background()

	mockCache.On("GetSummary", ctx, mock.Anything).Return("", cache.ErrCacheMiss)
	mockAI.On("Summarize", mock.Anything, summarizeInput, "user-supplied-key").Return("AI özeti", nil)
	mockCache.On("SetSummary", ctx, mock.Anything, "AI özeti").Return(nil)

	summary := svc.Summarize(ctx, summarizeInput, "user-supplied-key")
	assert.Equal(t, "AI özeti", summary)
	mockAI.AssertExpectations(t)
}

func TestSummarize_CacheKeyScopedToCredential(t *testing.T) {
	svc, _, mockCache, mockAI := setupService(t)
	ctx := context.Background()

	mockCache.On("GetSummary", ctx, mock.Anything).Return("", cache.ErrCacheMiss)
	mockAI.On("Summarize", mock.Anything, summarizeInput, mock.Anything).Return("AI özeti", nil)
	mockCache.On("SetSummary", ctx, mock.Anything, "AI özeti").Return(nil)

	svc.Summarize(ctx, summarizeInput, "key-one")
	svc.Summarize(ctx, summarizeInput, "key-two")

	// Same text under different API keys must not share a cache entry
	var keys []string
	for _, c := range mockCache.Calls {
		if c.Method == "GetSummary" {
			keys = append(keys, c.Arguments.String(1))
		}
	}
	assert.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestGenerateTags(t *testing.T) {
	svc, _, _, _ := setupService(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"Meeting text tagged as work",
			"Yarın sabah önemli bir toplantı var",
			[]string{"iş", "önemli"},
		},
		{
			"No keyword match defaults to genel",
			"lorem ipsum dolor sit amet",
			[]string{"genel"},
		},
		{
			"Uppercase keywords still match",
			"PROJE planı hazır",
			[]string{"iş"},
		},
		{
			"All categories in table order",
			"toplantı sonrası ailemle market alışverişi yaptım, acil listeyi unutma",
			[]string{"iş", "kişisel", "alışveriş", "önemli"},
		},
		{
			"Shopping only",
			"markete gidip satın alınacakları getir",
			[]string{"alışveriş"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.GenerateTags(tc.text))
		})
	}
}

func TestGenerateTags_CapAtFive(t *testing.T) {
	svc, _, _, _ := setupService(t)

	tags := svc.GenerateTags("toplantı aile market acil proje özel liste dikkat")
	assert.LessOrEqual(t, len(tags), 5)
}

func TestClassify(t *testing.T) {
	svc, _, _, _ := setupService(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"Work keyword", "yarın toplantı var", "iş"},
		{"Shopping keyword", "market listesi hazırla", "alışveriş"},
		{"Personal keyword", "aile yemeği planla", "kişisel"},
		{"Work beats shopping in priority order", "proje bitince market alışverişi", "iş"},
		{"Shopping beats personal in priority order", "aile yemeği sonrası market turu", "alışveriş"},
		{"No match", "lorem ipsum dolor", "genel"},
		{"Case insensitive", "PROJE planı gözden geçir", "iş"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.Classify(tc.text))
		})
	}
}
