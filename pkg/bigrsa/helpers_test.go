package bigrsa

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/entropy"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/logging"
)

func seeded(t *testing.T, seed string) io.Reader {
	t.Helper()
	r, err := entropy.NewDeterministic([]byte(seed))
	require.NoError(t, err)
	return r
}

// smallKeypair returns a reproducible keypair with 64-bit primes.
func smallKeypair(t *testing.T, seed string) *Keypair {
	t.Helper()
	g, err := NewKeyGenerator(Config{
		PrimeBits: 64,
		Source:    seeded(t, seed),
		Logger:    logging.Discard(),
	})
	require.NoError(t, err)
	kp, err := g.Generate(t.Context())
	require.NoError(t, err)
	return kp
}

type fillReader byte

func (f fillReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(f)
	}
	return len(p), nil
}

// scriptReader replays a fixed byte script and then reports io.EOF.
type scriptReader struct {
	script []byte
}

func (s *scriptReader) Read(p []byte) (int, error) {
	if len(s.script) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.script)
	s.script = s.script[n:]
	return n, nil
}
