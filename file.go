package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fcrypt/fcrypt/cipher"
	"github.com/fcrypt/fcrypt/pkg/pool"
)

const outputPerm = 0644

// pendingFile is an output file that only appears under its final name
// once CloseAtomicallyReplace succeeds.
type pendingFile interface {
	io.Writer
	Cleanup() error
	CloseAtomicallyReplace() error
}

// process runs c over conf.Input and replaces conf.Output atomically, so a
// failed run leaves no partial output behind.
func process(c cipher.Cipher, conf *Config) error {
	if sc, ok := c.(cipher.StreamCipher); ok {
		return processStream(sc, conf)
	}

	data, err := os.ReadFile(conf.Input)
	if err != nil {
		return err
	}

	var out []byte
	if conf.Decrypt {
		out, err = c.Decrypt(data)
	} else {
		out, err = c.Encrypt(data)
	}
	if err != nil {
		return err
	}

	return writeFile(conf.Output, out)
}

func processStream(sc cipher.StreamCipher, conf *Config) error {
	f, err := os.Open(conf.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	br := pool.GetBufReader(f)
	defer pool.PutBufReader(br)

	pf, err := newPendingFile(conf.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer pf.Cleanup()

	if conf.Decrypt {
		err = sc.DecryptTo(pf, br)
	} else {
		err = sc.EncryptTo(pf, br)
	}
	if err != nil {
		return err
	}

	return pf.CloseAtomicallyReplace()
}
