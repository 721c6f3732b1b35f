// Package executor provides the work-partitioning executor used to
// materialize feature columns in parallel.
//
// An Executor splits [0, count) into contiguous blocks and runs a function
// on each block, returning only after every block has finished. Blocks are
// disjoint, so callers writing block-local slices of a shared output need no
// further synchronization. Executors are owned by the caller and shared by
// many columns; columns themselves hold no concurrency state.
package executor

import (
	"fmt"
	"runtime"

	"github.com/arloliu/featstore/internal/options"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBlocksPerThread oversubscribes workers so uneven blocks still balance.
	DefaultBlocksPerThread = 4
	// DefaultMinBlockSize keeps per-block overhead small relative to the work.
	DefaultMinBlockSize = 1024
)

// Executor runs independent sub-ranges of [0, count) concurrently.
type Executor interface {
	// ThreadCount returns the maximum number of blocks run at once.
	ThreadCount() int

	// BlockSize returns the block size used for count elements when the
	// caller passes a non-positive blockSize to ExecRange.
	BlockSize(count int) int

	// ExecRange calls fn(begin, end) for consecutive blocks covering
	// [0, count) and blocks until all calls return. A non-positive
	// blockSize selects BlockSize(count).
	ExecRange(count, blockSize int, fn func(begin, end int))
}

// LocalExecutor is an Executor backed by goroutines limited through an errgroup.
type LocalExecutor struct {
	threads         int
	blocksPerThread int
	minBlockSize    int
	logger          *zap.Logger
}

var _ Executor = (*LocalExecutor)(nil)

// Option configures a LocalExecutor.
type Option = options.Option[*LocalExecutor]

// WithThreadCount sets the number of concurrently running blocks.
func WithThreadCount(n int) Option {
	return options.Named("thread count", func(e *LocalExecutor) error {
		if n < 1 {
			return fmt.Errorf("must be positive, got %d", n)
		}
		e.threads = n

		return nil
	})
}

// WithBlocksPerThread sets how many blocks BlockSize aims for per thread.
func WithBlocksPerThread(n int) Option {
	return options.Named("blocks per thread", func(e *LocalExecutor) error {
		if n < 1 {
			return fmt.Errorf("must be positive, got %d", n)
		}
		e.blocksPerThread = n

		return nil
	})
}

// WithMinBlockSize sets the smallest block BlockSize returns.
func WithMinBlockSize(n int) Option {
	return options.Named("min block size", func(e *LocalExecutor) error {
		if n < 1 {
			return fmt.Errorf("must be positive, got %d", n)
		}
		e.minBlockSize = n

		return nil
	})
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(e *LocalExecutor) {
		if logger == nil {
			logger = zap.NewNop()
		}
		e.logger = logger
	})
}

// NewLocalExecutor creates an executor. By default it runs GOMAXPROCS blocks at once.
func NewLocalExecutor(opts ...Option) (*LocalExecutor, error) {
	e := &LocalExecutor{
		threads:         runtime.GOMAXPROCS(0),
		blocksPerThread: DefaultBlocksPerThread,
		minBlockSize:    DefaultMinBlockSize,
		logger:          zap.NewNop(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, fmt.Errorf("executor: %w", err)
	}

	e.logger.Debug("local executor created",
		zap.Int("threads", e.threads),
		zap.Int("blocks_per_thread", e.blocksPerThread),
		zap.Int("min_block_size", e.minBlockSize))

	return e, nil
}

// Sequential returns an executor that runs every block in the calling goroutine.
func Sequential() *LocalExecutor {
	return &LocalExecutor{
		threads:         1,
		blocksPerThread: 1,
		minBlockSize:    DefaultMinBlockSize,
		logger:          zap.NewNop(),
	}
}

// ThreadCount implements Executor.
func (e *LocalExecutor) ThreadCount() int {
	return e.threads
}

// BlockSize implements Executor.
//
// The range is cut into ThreadCount*blocksPerThread blocks of equal size,
// but never smaller than the minimum block size.
func (e *LocalExecutor) BlockSize(count int) int {
	if count <= 0 {
		return e.minBlockSize
	}

	blocks := e.threads * e.blocksPerThread
	size := (count + blocks - 1) / blocks

	return max(size, e.minBlockSize)
}

// ExecRange implements Executor.
func (e *LocalExecutor) ExecRange(count, blockSize int, fn func(begin, end int)) {
	_ = e.ExecRangeWithError(count, blockSize, func(begin, end int) error {
		fn(begin, end)
		return nil
	})
}

// ExecRangeWithError is ExecRange for block functions that can fail. All
// started blocks run to completion; the first error is returned.
func (e *LocalExecutor) ExecRangeWithError(count, blockSize int, fn func(begin, end int) error) error {
	if count <= 0 {
		return nil
	}
	if blockSize <= 0 {
		blockSize = e.BlockSize(count)
	}

	blocks := BlockCount(count, blockSize)
	if e.threads == 1 || blocks == 1 {
		for b := range blocks {
			begin, end := BlockBounds(b, count, blockSize)
			if err := fn(begin, end); err != nil {
				return err
			}
		}

		return nil
	}

	e.logger.Debug("exec range",
		zap.Int("count", count),
		zap.Int("block_size", blockSize),
		zap.Int("blocks", blocks))

	var g errgroup.Group
	g.SetLimit(e.threads)
	for b := range blocks {
		begin, end := BlockBounds(b, count, blockSize)
		g.Go(func() error {
			return fn(begin, end)
		})
	}

	return g.Wait()
}

// BlockCount returns the number of blocks of blockSize needed to cover count elements.
func BlockCount(count, blockSize int) int {
	if count <= 0 {
		return 0
	}

	return (count + blockSize - 1) / blockSize
}

// BlockBounds returns the half-open range of block b.
func BlockBounds(b, count, blockSize int) (int, int) {
	begin := b * blockSize
	return begin, min(begin+blockSize, count)
}
