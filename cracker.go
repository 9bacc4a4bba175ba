package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultWorkers is how many goroutines race each round
const DefaultWorkers = 4

var (
	ErrNotFound    = errors.New("no password found within maximum length")
	ErrEmptyTarget = errors.New("target digest is empty")
)

// Partition decides how the workers of a round divide the candidates of that length
type Partition byte

const (
	// Interleaved hands worker i every candidate whose position is i modulo the worker count
	Interleaved Partition = iota
	// LeadingDigit puts the worker index in the first position and strides from there.
	// It can skip and repeat candidates, use only to compare against Interleaved.
	LeadingDigit
)

// Round is the outcome of searching every candidate of one length
type Round struct {
	Length   int
	Found    bool
	Password string
	Worker   int
	Elapsed  time.Duration
}

type Option func(*Cracker)

func WithCharset(charset Charset) Option {
	return func(c *Cracker) { c.charset = charset }
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(c *Cracker) { c.algorithm = algorithm }
}

func WithWorkers(workers int) Option {
	return func(c *Cracker) { c.workers = workers }
}

func WithPartition(partition Partition) Option {
	return func(c *Cracker) { c.partition = partition }
}

// WithMaxLength stops the search after this length, 0 searches forever
func WithMaxLength(length int) Option {
	return func(c *Cracker) { c.maxLength = length }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cracker) { c.log = logger }
}

// WithProgress draws a progress bar for each round on w
func WithProgress(w io.Writer) Option {
	return func(c *Cracker) { c.progress = w }
}

// WithRoundHook is called with the outcome of every finished round, in order
func WithRoundHook(hook func(Round)) Option {
	return func(c *Cracker) { c.onRound = hook }
}

// Cracker searches for a plaintext that hashes to a target digest, trying all strings of
// length 1, then 2 and so on.
type Cracker struct {
	target    []byte
	charset   Charset
	algorithm Algorithm
	workers   int
	partition Partition
	maxLength int

	log      zerolog.Logger
	progress io.Writer
	onRound  func(Round)
}

func NewCracker(target []byte, opts ...Option) (*Cracker, error) {
	c := &Cracker{
		target:    bytes.Clone(target),
		charset:   PrintableASCII,
		algorithm: MD5,
		workers:   DefaultWorkers,
		partition: Interleaved,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(c.target) == 0 {
		return nil, ErrEmptyTarget
	}
	if size := c.algorithm.New().Size(); len(c.target) != size {
		return nil, fmt.Errorf("%w: %v digests are %d bytes, got %d", ErrDigestLength, c.algorithm, size, len(c.target))
	}
	if c.charset.Len() == 0 {
		return nil, ErrEmptyCharset
	}
	if c.workers < 1 {
		return nil, fmt.Errorf("%w: need at least one worker, got %d", ErrInvalidPartition, c.workers)
	}
	if c.partition == LeadingDigit && c.workers > c.charset.Len() {
		return nil, fmt.Errorf("%w: %d workers cannot each lead with one of %d symbols", ErrInvalidPartition, c.workers, c.charset.Len())
	}
	if c.maxLength < 0 {
		return nil, fmt.Errorf("%w: maximum %d", ErrInvalidLength, c.maxLength)
	}

	c.log = c.log.With().Str("component", "cracker").Str("algorithm", c.algorithm.String()).Logger()
	return c, nil
}

// Run searches lengths 1, 2, ... until a match is found, ctx is cancelled or the
// maximum length is exhausted.
func (c *Cracker) Run(ctx context.Context) (Round, error) {
	for length := 1; c.maxLength == 0 || length <= c.maxLength; length++ {
		result, err := c.SearchLength(ctx, length)
		if err != nil {
			return result, err
		}
		if c.onRound != nil {
			c.onRound(result)
		}
		if result.Found {
			return result, nil
		}
	}
	return Round{Length: c.maxLength}, ErrNotFound
}

// round is the state shared by the workers of a single length
type round struct {
	found atomic.Bool // set once any worker has a match, workers poll it to quit early

	lock     sync.Mutex
	matched  bool
	password string
	worker   int
}

// SearchLength races the workers over every candidate of the given length
func (c *Cracker) SearchLength(ctx context.Context, length int) (Round, error) {
	gens := make([]*StringGen, c.workers)
	for i := range gens {
		var err error
		switch c.partition {
		case LeadingDigit:
			gens[i], err = NewStridedStringGen(c.charset, length, i, c.workers)
		default:
			gens[i], err = NewInterleavedStringGen(c.charset, length, i, c.workers)
		}
		if err != nil {
			return Round{Length: length}, err
		}
	}

	log := c.log.With().Int("length", length).Logger()
	log.Debug().Int64("candidates", gens[0].Complexity()).Int("workers", c.workers).Msg("Starting round")

	var r round
	stop := context.AfterFunc(ctx, func() { r.found.Store(true) })
	defer stop()

	pb := newRoundProgress(c.progress, length, gens[0].Complexity())

	start := time.Now()

	var workers sync.WaitGroup
	workers.Add(len(gens))
	for i, gen := range gens {
		go func(id int, gen *StringGen) {
			defer workers.Done()
			c.work(&r, id, gen, pb, log)
		}(i, gen)
	}
	workers.Wait()

	elapsed := time.Since(start)
	pb.close()

	result := Round{
		Length:  length,
		Elapsed: elapsed,
	}
	r.lock.Lock()
	result.Found = r.matched
	result.Password = r.password
	result.Worker = r.worker
	r.lock.Unlock()

	// A match beats a cancellation that arrived while the workers were finishing
	if !result.Found {
		if err := ctx.Err(); err != nil {
			log.Debug().Err(err).Msg("Round cancelled")
			return result, err
		}
	}
	log.Debug().Bool("found", result.Found).Dur("elapsed", elapsed).Msg("Round finished")
	return result, nil
}

func (c *Cracker) work(r *round, id int, gen *StringGen, pb *roundProgress, log zerolog.Logger) {
	hasher := c.algorithm.New()
	sum := make([]byte, 0, hasher.Size())

	var tried int64
	defer func() { pb.add(tried) }()

	for gen.Next() {
		// Another worker got there first (or we were cancelled), a missed store only costs one hash
		if r.found.Load() {
			return
		}

		sum = hasher.Sum(sum[:0], gen.Bytes())
		tried++
		if tried == progressBatch {
			pb.add(tried)
			tried = 0
		}

		if bytes.Equal(sum, c.target) {
			r.lock.Lock()
			r.matched = true
			r.password = gen.String()
			r.worker = id
			r.lock.Unlock()
			r.found.Store(true)

			log.Debug().Int("worker", id).Msg("Worker found match")
			return
		}
	}
}
