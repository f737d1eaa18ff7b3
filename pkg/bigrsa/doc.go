// Package bigrsa implements textbook RSA over math/big: key generation from
// Miller–Rabin probable primes, and unpadded encryption and decryption of
// byte messages.
//
// # Security Warning
//
// This is a reference implementation, not a hardened cryptosystem:
//   - No padding. Encryption is deterministic and malleable.
//   - No chunking. A message must encode to an integer below the modulus.
//   - No constant-time arithmetic. math/big leaks timing.
//   - The default Miller–Rabin round count (5) is sized for demonstrations.
//
// Use crypto/rsa with OAEP for anything that protects real data.
//
// # Usage
//
//	kp, err := bigrsa.GenerateKeys(ctx, 512)
//	if err != nil {
//	    return err
//	}
//	ct, err := kp.Encrypt([]byte("Hello, world!"))
//	if err != nil {
//	    return err // errors.Is(err, bigrsa.ErrMessageOutOfRange) for long input
//	}
//	pt, err := kp.Decrypt(ct)
//
// For repeatable keys in tests, configure a seeded source:
//
//	src, _ := entropy.NewDeterministic([]byte("test seed"))
//	g, _ := bigrsa.NewKeyGenerator(bigrsa.Config{PrimeBits: 128, Source: src})
//	kp, _ := g.Generate(ctx)
//
// # Byte Encoding
//
// Messages and ciphertexts are read as unsigned big-endian integers.
// Ciphertexts are written left-padded to the byte length of the modulus.
// Decrypted plaintexts are written in minimal form, so leading 0x00 bytes of
// the original message are not recovered.
//
// # Subpackages
//
//   - entropy: randomness sources (crypto/rand, seeded, locked)
//   - primes: random integers, Miller–Rabin, prime search
//   - modarith: modular exponentiation, gcd, modular inverse
//   - logging: slog-backed logging facade with redaction helpers
package bigrsa
