package playground

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/internal/config"
	"github.com/rs/zerolog"
)

// NewLogger for the CLI. Pretty output goes through zerolog.ConsoleWriter,
// otherwise one JSON object per line.
func NewLogger(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Session drives one BSTree of ints, logging and counting every operation.
// Like the tree itself it is not safe for concurrent use.
type Session struct {
	Log     zerolog.Logger
	Metrics *Metrics
	tree    *Trees.BSTree[int]
}

func NewSession(log zerolog.Logger, m *Metrics) *Session {
	return &Session{
		Log:     log,
		Metrics: m,
		tree:    Trees.New[int](),
	}
}

func (s *Session) Tree() *Trees.BSTree[int] {
	return s.tree
}

func (s *Session) Insert(vs ...int) {
	for _, v := range vs {
		s.tree.Insert(v)
		s.Log.Debug().Int("value", v).Msg("inserted")
	}
	s.Metrics.Inserts.Add(float64(len(vs)))
	s.Metrics.Size.Set(float64(s.tree.Size()))
}

func (s *Session) Delete(v int) bool {
	found := s.tree.Remove(v)
	s.Metrics.Deletes.WithLabelValues(strconv.FormatBool(found)).Inc()
	s.Metrics.Size.Set(float64(s.tree.Size()))
	s.Log.Debug().Int("value", v).Bool("found", found).Msg("deleted")
	return found
}

func (s *Session) Find(v int) bool {
	s.Metrics.Finds.Inc()
	return s.tree.Has(v)
}

// Traverse returns the values of the tree in the given order, one of
// config.AllOrders.
func (s *Session) Traverse(order string) ([]int, error) {
	var next func() (int, bool)
	switch order {
	case config.OrderPre:
		next = s.tree.PreOrder()
	case config.OrderIn:
		next = s.tree.InOrder()
	case config.OrderPost:
		next = s.tree.PostOrder()
	case config.OrderBFS:
		next = s.tree.BreadthFirst()
	default:
		return nil, fmt.Errorf("unknown traversal order %q", order)
	}
	return Trees.Collect(next), nil
}

// Measure the height of the tree into the metrics. O(n).
func (s *Session) Measure() int {
	h := s.tree.Height()
	s.Metrics.Height.Set(float64(h))
	return h
}

type BenchResult struct {
	Ops, Inserts, Deletes, Hits int
	Size                        uint
	Height                      int
	Elapsed                     time.Duration
}

const progressEvery = 100_000

// Bench runs cfg.Ops random operations on the session's tree: each one deletes
// a random key with probability cfg.DeleteFraction and inserts one otherwise.
// The same seed always gives the same tree. Returns early with ctx's error if
// ctx is done.
func (s *Session) Bench(ctx context.Context, cfg config.BenchConfig) (BenchResult, error) {
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	res := BenchResult{}
	start, since := time.Now(), time.Now()
	for res.Ops < cfg.Ops {
		if res.Ops%progressEvery == 0 && res.Ops > 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			s.Log.Info().Msgf("applied %s ops in %s; %s ops/s; size %s",
				humanize.Comma(int64(res.Ops)),
				time.Since(since),
				humanize.Comma(int64(progressEvery/time.Since(since).Seconds())),
				humanize.Comma(int64(s.tree.Size())))
			since = time.Now()
		}
		k := r.IntN(cfg.KeyRange)
		if r.Float64() < cfg.DeleteFraction {
			res.Deletes++
			if s.Delete(k) {
				res.Hits++
			}
		} else {
			res.Inserts++
			s.Insert(k)
		}
		res.Ops++
	}
	res.Elapsed = time.Since(start)
	res.Size = s.tree.Size()
	res.Height = s.Measure()
	s.Log.Info().
		Str("ops", humanize.Comma(int64(res.Ops))).
		Str("size", humanize.Comma(int64(res.Size))).
		Int("height", res.Height).
		Int("delete_hits", res.Hits).
		Dur("elapsed", res.Elapsed).
		Msg("bench done")
	if s.tree.Corrupt() {
		return res, fmt.Errorf("tree is corrupt after %d ops: %w", res.Ops, Trees.Verify(s.tree.Root()))
	}
	return res, nil
}
