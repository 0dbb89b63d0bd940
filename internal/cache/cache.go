// Package cache реализует кэш производных графиков по схеме get-or-compute.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/akozadaev/commdist_analytics/internal/observability"
)

// ComputeFunc вычисляет значение при промахе кэша.
type ComputeFunc func(ctx context.Context) (any, error)

// Options задает параметры кэша.
type Options struct {
	Version string        // версия схемы ключей
	TTL     time.Duration // 0 - записи живут до явной инвалидации
	Metrics *observability.Metrics
	Logger  *zap.Logger
}

// Derived отдает ранее вычисленный график или вычисляет и сохраняет его.
// Последовательность get-compute-set не атомарна между процессами: параллельные промахи
// вычисляют одинаковый результат, и побеждает последняя запись. Внутри процесса
// одновременные промахи по одному ключу объединяются.
type Derived struct {
	store   Store
	version string
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *zap.Logger
	group   singleflight.Group
}

func New(store Store, opts Options) *Derived {
	if opts.Version == "" {
		opts.Version = "1"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Derived{
		store:   store,
		version: opts.Version,
		ttl:     opts.TTL,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
}

// GetOrCompute возвращает сохраненные байты без изменений при попадании.
// При промахе вызывает compute, кодирует результат в JSON, сохраняет и возвращает те же байты.
// Ошибка compute не кэшируется. Сбой хранилища не прерывает запрос: значение вычисляется заново.
// Отмена ctx прерывает ожидание только этого вызова, общее вычисление продолжается.
func (d *Derived) GetOrCompute(ctx context.Context, key Key, compute ComputeFunc) (json.RawMessage, error) {
	storeKey := key.StoreKey(d.version)

	raw, ok, err := d.store.Get(ctx, storeKey)
	if err != nil {
		d.metrics.CacheError("get")
		d.logger.Warn("chart cache read failed", zap.String("key", storeKey), zap.Error(err))
	}
	if ok {
		d.metrics.CacheHit()
		return json.RawMessage(raw), nil
	}
	d.metrics.CacheMiss()

	// Общее вычисление не зависит от отмены контекста первого вызывающего.
	shared := context.WithoutCancel(ctx)
	ch := d.group.DoChan(storeKey, func() (any, error) {
		// Вызов мог прийти, когда предыдущее вычисление уже сохранило значение.
		if raw, ok, err := d.store.Get(shared, storeKey); err == nil && ok {
			return json.RawMessage(raw), nil
		}

		value, err := compute(shared)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", storeKey, err)
		}

		if err := d.store.Set(shared, storeKey, encoded, d.ttl); err != nil {
			d.metrics.CacheError("set")
			d.logger.Warn("chart cache write failed", zap.String("key", storeKey), zap.Error(err))
		}
		return json.RawMessage(encoded), nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	}
}

// Invalidate удаляет графики, чтобы следующий запрос пересчитал их.
func (d *Derived) Invalidate(ctx context.Context, keys ...Key) error {
	if len(keys) == 0 {
		return nil
	}

	storeKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		storeKeys = append(storeKeys, key.StoreKey(d.version))
	}

	if err := d.store.Delete(ctx, storeKeys...); err != nil {
		d.metrics.CacheError("delete")
		return fmt.Errorf("failed to invalidate chart cache: %w", err)
	}
	return nil
}
