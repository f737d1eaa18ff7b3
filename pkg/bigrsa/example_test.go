package bigrsa_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/entropy"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/logging"
)

func ExampleKeyGenerator_Generate() {
	src, err := entropy.NewDeterministic([]byte("example seed"))
	if err != nil {
		log.Fatal(err)
	}
	g, err := bigrsa.NewKeyGenerator(bigrsa.Config{
		PrimeBits: 256,
		Source:    src,
		Logger:    logging.Discard(),
	})
	if err != nil {
		log.Fatal(err)
	}

	kp, err := g.Generate(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	ct, err := kp.Encrypt([]byte("Hello, world!"))
	if err != nil {
		log.Fatal(err)
	}
	pt, err := kp.Decrypt(ct)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(ct) == bigrsa.ModulusSize(kp.Modulus))
	fmt.Println(string(pt))
	// Output:
	// true
	// Hello, world!
}
