package main

import (
	"context"
	"encoding/hex"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrackSingleCharacter(t *testing.T) {
	target, err := hex.DecodeString("0cc175b9c0f1b6a831c399e269772661")
	require.NoError(t, err)

	var rounds []Round
	c, err := NewCracker(target, WithRoundHook(func(r Round) { rounds = append(rounds, r) }))
	require.NoError(t, err)

	result, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "a", result.Password)
	assert.Equal(t, 1, result.Length)
	assert.GreaterOrEqual(t, result.Worker, 0)
	assert.Less(t, result.Worker, DefaultWorkers)

	require.Len(t, rounds, 1)
	assert.Equal(t, result, rounds[0])
}

func TestCrackReportsShorterLengthsFirst(t *testing.T) {
	for _, password := range []string{"hi", "~ ", "Z9"} {
		var rounds []Round
		c, err := NewCracker(MD5.Digest([]byte(password)), WithRoundHook(func(r Round) { rounds = append(rounds, r) }))
		require.NoError(t, err)

		result, err := c.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, password, result.Password)

		require.Len(t, rounds, 2)
		assert.False(t, rounds[0].Found)
		assert.Equal(t, 1, rounds[0].Length)
		assert.True(t, rounds[1].Found)
		assert.Equal(t, 2, rounds[1].Length)
	}
}

func TestCrackIndependentOfWorkerCount(t *testing.T) {
	cs := mustCharset("abcdefgh0123")
	target := SHA256.Digest([]byte("h0a"))

	for _, workers := range []int{1, 2, 3, 4, 7} {
		c, err := NewCracker(target, WithCharset(cs), WithAlgorithm(SHA256), WithWorkers(workers))
		require.NoError(t, err)

		result, err := c.Run(context.Background())
		require.NoError(t, err, "workers %d", workers)
		assert.Equal(t, "h0a", result.Password, "workers %d", workers)
		assert.Less(t, result.Worker, workers)
	}
}

func TestCrackEveryCandidateWithManyWorkers(t *testing.T) {
	// More workers than candidates for length 1 leaves some of them idle
	cs := mustCharset("xy")
	for _, password := range []string{"x", "y", "xx", "xy", "yx", "yy", "yxy"} {
		c, err := NewCracker(NTLM.Digest([]byte(password)), WithCharset(cs), WithAlgorithm(NTLM), WithWorkers(5))
		require.NoError(t, err)

		result, err := c.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, password, result.Password)
		assert.Equal(t, len(password), result.Length)
	}
}

func TestLeadingDigitPartitionMissesCandidates(t *testing.T) {
	cs := mustCharset("abcde")
	// "ab" is position 1, which no leading digit worker visits with four workers
	target := MD5.Digest([]byte("ab"))

	c, err := NewCracker(target, WithCharset(cs), WithPartition(LeadingDigit), WithMaxLength(2))
	require.NoError(t, err)
	_, err = c.Run(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	c, err = NewCracker(target, WithCharset(cs), WithMaxLength(2))
	require.NoError(t, err)
	result, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ab", result.Password)
}

func TestMaxLengthExhausted(t *testing.T) {
	cs := mustCharset("abc")
	var rounds []Round
	c, err := NewCracker(MD5.Digest([]byte("abcd")), WithCharset(cs), WithMaxLength(3),
		WithRoundHook(func(r Round) { rounds = append(rounds, r) }))
	require.NoError(t, err)

	_, err = c.Run(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	require.Len(t, rounds, 3)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.Length)
		assert.False(t, r.Found)
	}
}

func TestUnreachableTargetRunsUntilCancelled(t *testing.T) {
	// '!' is not in the charset, so the search only ends when cancelled
	cs := mustCharset("ab")
	c, err := NewCracker(MD5.Digest([]byte("a!")), WithCharset(cs))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearchLengthCancelled(t *testing.T) {
	c, err := NewCracker(MD5.Digest([]byte("unreachable\x01")))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := c.SearchLength(ctx, 6)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Found)
	assert.Equal(t, 6, result.Length)
}

func TestSearchLengthNoMatch(t *testing.T) {
	c, err := NewCracker(MD5.Digest([]byte("abc")))
	require.NoError(t, err)

	result, err := c.SearchLength(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Password)
	assert.Equal(t, 2, result.Length)
}

func TestWorkerOwningCandidateReportsIt(t *testing.T) {
	// 'a' is symbol 65 of the printable charset, so with interleaving it belongs to worker 65 % W
	for _, workers := range []int{1, 2, 4, 6} {
		c, err := NewCracker(MD5.Digest([]byte("a")), WithWorkers(workers))
		require.NoError(t, err)

		result, err := c.SearchLength(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, 65%workers, result.Worker, "workers %d", workers)
	}
}

func TestNewCrackerValidation(t *testing.T) {
	target := MD5.Digest([]byte("a"))

	_, err := NewCracker(nil)
	assert.ErrorIs(t, err, ErrEmptyTarget)

	_, err = NewCracker(target, WithAlgorithm(SHA1))
	assert.ErrorIs(t, err, ErrDigestLength)

	_, err = NewCracker(target, WithWorkers(0))
	assert.ErrorIs(t, err, ErrInvalidPartition)

	_, err = NewCracker(target, WithCharset(mustCharset("ab")), WithPartition(LeadingDigit))
	assert.ErrorIs(t, err, ErrInvalidPartition)

	_, err = NewCracker(target, WithCharset(Charset{}))
	assert.ErrorIs(t, err, ErrEmptyCharset)

	_, err = NewCracker(target, WithMaxLength(-1))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestCrackerDoesNotAliasTarget(t *testing.T) {
	target := MD5.Digest([]byte("b"))
	c, err := NewCracker(target, WithCharset(mustCharset("ab")))
	require.NoError(t, err)
	target[0] ^= 0xff

	result, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", result.Password)
}

func TestCrackWithProgressAndLogging(t *testing.T) {
	var progress, logs safeBuffer // progress is drawn concurrently by the workers
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

	c, err := NewCracker(MD5.Digest([]byte("zz")), WithProgress(&progress), WithLogger(logger))
	require.NoError(t, err)

	result, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "zz", result.Password)
	assert.Contains(t, logs.String(), "Worker found match")
	assert.Contains(t, logs.String(), `"component":"cracker"`)
	assert.Contains(t, logs.String(), `"algorithm":"md5"`)
}

type safeBuffer struct {
	lock sync.Mutex
	data []byte
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *safeBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return string(b.data)
}
