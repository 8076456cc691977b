package combination

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		wantErr  error
	}{
		{name: "letters", alphabet: letters},
		{name: "single symbol", alphabet: "x"},
		{name: "empty", alphabet: "", wantErr: ErrEmptyAlphabet},
		{name: "duplicate", alphabet: "abca", wantErr: ErrDuplicateSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, err := New(tt.alphabet)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, ix)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.alphabet), ix.Size())
			assert.Equal(t, tt.alphabet, ix.Alphabet())
		})
	}
}

func TestDecodeConcreteExample(t *testing.T) {
	ix, err := New(letters)
	require.NoError(t, err)

	want := []string{"aa", "ab", "ac"}
	for i, w := range want {
		got, err := ix.Decode(big.NewInt(int64(i)), 2)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	last, err := ix.Decode(big.NewInt(675), 2)
	require.NoError(t, err)
	assert.Equal(t, "zz", last)

	// 26 -> second position advances
	got, err := ix.Decode(big.NewInt(26), 2)
	require.NoError(t, err)
	assert.Equal(t, "ba", got)
}

func TestDecodeBijective(t *testing.T) {
	ix, err := New("ab0-")
	require.NoError(t, err)

	const length = 4
	total := ix.Count(length)
	require.Equal(t, int64(256), total.Int64())

	seen := make(map[string]struct{}, total.Int64())
	for i := int64(0); i < total.Int64(); i++ {
		s, err := ix.Decode(big.NewInt(i), length)
		require.NoError(t, err)
		require.Len(t, s, length)
		for _, c := range s {
			require.True(t, strings.ContainsRune("ab0-", c), "unexpected symbol %q", c)
		}
		_, dup := seen[s]
		require.False(t, dup, "duplicate string %q at index %d", s, i)
		seen[s] = struct{}{}

		back, err := ix.Encode(s)
		require.NoError(t, err)
		require.Equal(t, i, back.Int64())
	}
	assert.Len(t, seen, int(total.Int64()))
}

func TestDecodeOrderFollowsAlphabet(t *testing.T) {
	ix, err := New(letters + "0123456789-")
	require.NoError(t, err)

	prev := ""
	for i := int64(0); i < 37*37; i++ {
		s, err := ix.Decode(big.NewInt(i), 2)
		require.NoError(t, err)
		if prev != "" {
			pi, _ := ix.Encode(prev)
			si, _ := ix.Encode(s)
			require.Equal(t, 1, si.Cmp(pi))
		}
		prev = s
	}
	assert.Equal(t, "--", prev)
}

func TestDecodeEdgeCases(t *testing.T) {
	t.Run("zero length", func(t *testing.T) {
		ix, _ := New(letters)
		assert.Equal(t, int64(1), ix.Count(0).Int64())

		s, err := ix.Decode(big.NewInt(0), 0)
		require.NoError(t, err)
		assert.Equal(t, "", s)

		_, err = ix.Decode(big.NewInt(1), 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("single symbol alphabet", func(t *testing.T) {
		ix, _ := New("x")
		assert.Equal(t, int64(1), ix.Count(5).Int64())

		s, err := ix.Decode(big.NewInt(0), 5)
		require.NoError(t, err)
		assert.Equal(t, "xxxxx", s)

		var got []string
		for v := range ix.Sequence(big.NewInt(0), 3, 10) {
			got = append(got, v)
		}
		assert.Equal(t, []string{"xxx"}, got)
	})

	t.Run("out of range", func(t *testing.T) {
		ix, _ := New(letters)
		_, err := ix.Decode(big.NewInt(676), 2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = ix.Decode(big.NewInt(-1), 2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = ix.Decode(nil, 2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("negative length", func(t *testing.T) {
		ix, _ := New(letters)
		_, err := ix.Decode(big.NewInt(0), -1)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		ix, _ := New(letters)
		_, err := ix.Encode("a#")
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	})
}

func TestCountBeyondUint64(t *testing.T) {
	ix, err := New(letters + "0123456789-")
	require.NoError(t, err)

	total := ix.Count(20)

	// 37^20 computed independently by repeated multiplication.
	expected := big.NewInt(1)
	for i := 0; i < 20; i++ {
		expected.Mul(expected, big.NewInt(37))
	}
	assert.Equal(t, 0, total.Cmp(expected))
	assert.False(t, total.IsUint64())

	last := new(big.Int).Sub(total, big.NewInt(1))
	s, err := ix.Decode(last, 20)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("-", 20), s)

	back, err := ix.Encode(s)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Cmp(last))
}

func TestSequenceMatchesDecode(t *testing.T) {
	ix, err := New(letters + "0123456789")
	require.NoError(t, err)

	starts := []int64{0, 35, 36*36 - 5, 1000}
	for _, start := range starts {
		var got []string
		for s := range ix.Sequence(big.NewInt(start), 3, 50) {
			got = append(got, s)
		}
		require.Len(t, got, 50)
		for i, s := range got {
			want, err := ix.Decode(big.NewInt(start+int64(i)), 3)
			require.NoError(t, err)
			require.Equal(t, want, s, "start=%d offset=%d", start, i)
		}
	}
}

func TestSequenceStopsAtEndOfSpace(t *testing.T) {
	ix, err := New("ab")
	require.NoError(t, err)

	var got []string
	for s := range ix.Sequence(big.NewInt(5), 3, 10) {
		got = append(got, s)
	}
	assert.Equal(t, []string{"bab", "bba", "bbb"}, got)

	count := 0
	for range ix.Sequence(big.NewInt(8), 3, 10) {
		count++
	}
	assert.Zero(t, count)
}

func TestSequenceLargeStart(t *testing.T) {
	ix, err := New(letters + "0123456789-")
	require.NoError(t, err)

	start := new(big.Int).Sub(ix.Count(20), big.NewInt(2))
	var got []string
	for s := range ix.Sequence(start, 20, 5) {
		got = append(got, s)
	}
	require.Len(t, got, 2)
	assert.Equal(t, strings.Repeat("-", 19)+"9", got[0])
	assert.Equal(t, strings.Repeat("-", 20), got[1])
}

func TestSequenceEarlyBreak(t *testing.T) {
	ix, _ := New(letters)
	var got []string
	for s := range ix.Sequence(big.NewInt(0), 2, 100) {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"aa", "ab"}, got)
}
