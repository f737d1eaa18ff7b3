package entropy

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// ErrEmptySeed is returned by NewDeterministic when no seed material is given.
var ErrEmptySeed = errors.New("entropy: empty seed")

const (
	deterministicSalt = "bigrsa/entropy/deterministic/v1"

	// epochSize is the HKDF-SHA-512 output limit (255 blocks of 64 bytes).
	epochSize = 255 * sha512.Size
)

// Default returns the process-wide cryptographically secure source.
func Default() io.Reader {
	return rand.Reader
}

// NewDeterministic returns a reader that yields the same unbounded byte
// stream for the same seed. It must not be used for keys that protect real
// data. The returned reader is not safe for concurrent use; wrap it with
// Locked when sharing it.
func NewDeterministic(seed []byte) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	s := make([]byte, len(seed))
	copy(s, seed)
	return &deterministicReader{seed: s}, nil
}

// deterministicReader chains HKDF expansions. Each epoch expands the seed
// with the epoch number in the info string, so the stream never runs into
// the per-expansion output limit and epochs never repeat.
type deterministicReader struct {
	seed  []byte
	epoch uint64
	cur   io.Reader
	left  int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	out := 0
	for out < len(p) {
		if r.left == 0 {
			r.rekey()
		}
		n := min(len(p)-out, r.left)
		if _, err := io.ReadFull(r.cur, p[out:out+n]); err != nil {
			return out, fmt.Errorf("entropy: expand epoch %d: %w", r.epoch, err)
		}
		out += n
		r.left -= n
	}
	return out, nil
}

func (r *deterministicReader) rekey() {
	var info [8 + len("bigrsa-stream")]byte
	binary.BigEndian.PutUint64(info[:8], r.epoch)
	copy(info[8:], "bigrsa-stream")
	r.epoch++
	r.cur = hkdf.New(sha512.New, r.seed, []byte(deterministicSalt), info[:])
	r.left = epochSize
}

// Locked wraps r so that concurrent Read calls are serialized.
func Locked(r io.Reader) io.Reader {
	if l, ok := r.(*lockedReader); ok {
		return l
	}
	return &lockedReader{r: r}
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
