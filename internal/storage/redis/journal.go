// Package redis implements the replay journal on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Journal is a Redis-backed implementation of storage.Journal
type Journal struct {
	client *redis.Client
	cfg    Config
}

// New connects to Redis and verifies the connection
func New(cfg Config) (*Journal, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a journal with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Journal {
	return &Journal{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (j *Journal) Close() error {
	return j.client.Close()
}

// Ensure Journal implements the interface
var _ storage.Journal = (*Journal)(nil)

// sessionHash is the stored form of a session header.
type sessionHash struct {
	Variant       string `redis:"variant"`
	Seed          int64  `redis:"seed"`
	Side          int    `redis:"side"`
	Palette       string `redis:"palette"`
	MaxChainSteps int    `redis:"max_chain_steps"`
	InitialGrid   string `redis:"initial_grid"`
	FinalGrid     string `redis:"final_grid"`
	StartedAt     int64  `redis:"started_at"`
	FinishedAt    int64  `redis:"finished_at"`
	SwipeCount    int    `redis:"swipe_count"`
}

const (
	fieldFinishedAt = "finished_at"
	fieldFinalGrid  = "final_grid"
	fieldSwipeCount = "swipe_count"
)

// swipeJSON is one element of the swipes LIST. Seq is the list index + 1.
type swipeJSON struct {
	From       int    `json:"from"`
	Direction  string `json:"dir"`
	Accepted   bool   `json:"accepted"`
	ChainSteps int    `json:"chain_steps"`
	Result     string `json:"result"`
}

func (j *Journal) StartSession(ctx context.Context, info core.BoardInfo, initialGrid string) (storage.Session, error) {
	sess := storage.NewSession(info, initialGrid)

	palette, err := json.Marshal(sess.Palette)
	if err != nil {
		return storage.Session{}, fmt.Errorf("storage: cannot encode palette: %w", err)
	}

	order, err := j.client.Incr(ctx, sessionSeqKey()).Result()
	if err != nil {
		return storage.Session{}, fmt.Errorf("storage: cannot start session: %w", err)
	}

	h := sessionHash{
		Variant:       sess.Variant,
		Seed:          sess.Seed,
		Side:          sess.Side,
		Palette:       string(palette),
		MaxChainSteps: sess.MaxChainSteps,
		InitialGrid:   sess.InitialGrid,
		StartedAt:     sess.StartedAt.UnixNano(),
	}

	// Use pipeline for atomic save + index update
	pipe := j.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(sess.ID), h)
	pipe.ZAdd(ctx, recentIndexKey(), redis.Z{Score: float64(order), Member: sess.ID})
	if j.cfg.SessionTTL > 0 {
		pipe.Expire(ctx, sessionKey(sess.ID), j.cfg.SessionTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return storage.Session{}, fmt.Errorf("storage: cannot start session: %w", err)
	}
	return sess, nil
}

// checkOpen reads the finished flag inside a WATCH transaction.
func checkOpen(ctx context.Context, tx *redis.Tx, key string) error {
	finishedAt, err := tx.HGet(ctx, key, fieldFinishedAt).Int64()
	if errors.Is(err, redis.Nil) {
		return storage.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query session: %w", err)
	}
	if finishedAt != 0 {
		return storage.ErrSessionFinished
	}
	return nil
}

func (j *Journal) AppendSwipe(ctx context.Context, sessionID string, rec storage.SwipeRecord) error {
	data, err := json.Marshal(swipeJSON{
		From:       rec.From,
		Direction:  rec.Direction,
		Accepted:   rec.Accepted,
		ChainSteps: rec.ChainSteps,
		Result:     rec.Result,
	})
	if err != nil {
		return fmt.Errorf("storage: cannot encode swipe: %w", err)
	}

	key := sessionKey(sessionID)
	return j.client.Watch(ctx, func(tx *redis.Tx) error {
		if err := checkOpen(ctx, tx, key); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, swipesKey(sessionID), data)
			pipe.HIncrBy(ctx, key, fieldSwipeCount, 1)
			if j.cfg.SessionTTL > 0 {
				pipe.Expire(ctx, key, j.cfg.SessionTTL)
				pipe.Expire(ctx, swipesKey(sessionID), j.cfg.SessionTTL)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("storage: cannot save swipe: %w", err)
		}
		return nil
	}, key)
}

func (j *Journal) FinishSession(ctx context.Context, sessionID string, finalGrid string) error {
	key := sessionKey(sessionID)
	return j.client.Watch(ctx, func(tx *redis.Tx) error {
		if err := checkOpen(ctx, tx, key); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				fieldFinalGrid, finalGrid,
				fieldFinishedAt, time.Now().UTC().UnixNano(),
			)
			return nil
		})
		if err != nil {
			return fmt.Errorf("storage: cannot finish session: %w", err)
		}
		return nil
	}, key)
}

func (j *Journal) Session(ctx context.Context, sessionID string) (storage.Session, error) {
	res := j.client.HGetAll(ctx, sessionKey(sessionID))
	fields, err := res.Result()
	if err != nil {
		return storage.Session{}, fmt.Errorf("storage: cannot query session: %w", err)
	}
	if len(fields) == 0 {
		return storage.Session{}, storage.ErrSessionNotFound
	}

	var h sessionHash
	if err := res.Scan(&h); err != nil {
		return storage.Session{}, fmt.Errorf("storage: cannot decode session: %w", err)
	}

	sess := storage.Session{
		ID:            sessionID,
		Variant:       h.Variant,
		Seed:          h.Seed,
		Side:          h.Side,
		MaxChainSteps: h.MaxChainSteps,
		InitialGrid:   h.InitialGrid,
		FinalGrid:     h.FinalGrid,
		SwipeCount:    h.SwipeCount,
		StartedAt:     time.Unix(0, h.StartedAt).UTC(),
	}
	if h.FinishedAt != 0 {
		sess.FinishedAt = time.Unix(0, h.FinishedAt).UTC()
	}
	if err := json.Unmarshal([]byte(h.Palette), &sess.Palette); err != nil {
		return storage.Session{}, fmt.Errorf("storage: cannot decode palette: %w", err)
	}
	return sess, nil
}

func (j *Journal) Swipes(ctx context.Context, sessionID string) ([]storage.SwipeRecord, error) {
	if _, err := j.Session(ctx, sessionID); err != nil {
		return nil, err
	}

	items, err := j.client.LRange(ctx, swipesKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query swipes: %w", err)
	}

	records := make([]storage.SwipeRecord, 0, len(items))
	for i, item := range items {
		var s swipeJSON
		if err := json.Unmarshal([]byte(item), &s); err != nil {
			return nil, fmt.Errorf("storage: cannot decode swipe %d: %w", i+1, err)
		}
		records = append(records, storage.SwipeRecord{
			Seq:        i + 1,
			From:       s.From,
			Direction:  s.Direction,
			Accepted:   s.Accepted,
			ChainSteps: s.ChainSteps,
			Result:     s.Result,
		})
	}
	return records, nil
}

// RecentSessions drops index entries whose session has expired.
func (j *Journal) RecentSessions(ctx context.Context, limit int) ([]storage.Session, error) {
	if limit <= 0 {
		limit = storage.DefaultRecentLimit
	}

	var sessions []storage.Session
	var start int64
	for len(sessions) < limit {
		ids, err := j.client.ZRevRange(ctx, recentIndexKey(), start, start+int64(limit)-1).Result()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		start += int64(len(ids))

		for _, id := range ids {
			sess, err := j.Session(ctx, id)
			if errors.Is(err, storage.ErrSessionNotFound) {
				//nolint:errcheck // stale index entry, retried on the next listing
				j.client.ZRem(ctx, recentIndexKey(), id)
				start--
				continue
			}
			if err != nil {
				return nil, err
			}
			sessions = append(sessions, sess)
			if len(sessions) == limit {
				break
			}
		}
	}
	return sessions, nil
}
