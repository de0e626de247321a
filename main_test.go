package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fcrypt/fcrypt/cipher"
	"github.com/fcrypt/fcrypt/feistel"
)

func TestResolveArgs(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		args    []string
		wantErr bool
		want    Config
	}{
		{"positional password", Config{Encrypt: true}, []string{"pw", "in", "out"}, false,
			Config{Encrypt: true, Password: "pw", Input: "in", Output: "out"}},
		{"flag password", Config{Decrypt: true, Password: "pw"}, []string{"in", "out"}, false,
			Config{Decrypt: true, Password: "pw", Input: "in", Output: "out"}},
		{"no mode", Config{}, []string{"pw", "in", "out"}, true, Config{}},
		{"both modes", Config{Encrypt: true, Decrypt: true}, []string{"pw", "in", "out"}, true, Config{}},
		{"missing output", Config{Encrypt: true}, []string{"pw", "in"}, true, Config{}},
		{"same file", Config{Encrypt: true}, []string{"pw", "a/f", "a/../a/f"}, true, Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := tt.conf
			err := conf.resolveArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && conf != tt.want {
				t.Fatalf("resolveArgs() = %+v, want %+v", conf, tt.want)
			}
		})
	}
}

func runFile(t *testing.T, method string, decrypt bool, in, out string) error {
	t.Helper()
	c, err := cipher.PickCipher(method, "test")
	if err != nil {
		t.Fatal(err)
	}
	return process(c, &Config{Method: method, Encrypt: !decrypt, Decrypt: decrypt, Password: "test", Input: in, Output: out})
}

func TestProcessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	enc := filepath.Join(dir, "cipher.bin")
	dec := filepath.Join(dir, "plain.out")

	data := bytes.Repeat([]byte("file contents\n"), 5000)
	if err := os.WriteFile(plain, data, 0644); err != nil {
		t.Fatal(err)
	}

	for _, method := range []string{"feistel", "scrypt", "vcrypt", "feistel-ctr", "chacha20-poly1305"} {
		if err := runFile(t, method, false, plain, enc); err != nil {
			t.Fatalf("%s: encrypt: %v", method, err)
		}
		if err := runFile(t, method, true, enc, dec); err != nil {
			t.Fatalf("%s: decrypt: %v", method, err)
		}

		got, err := os.ReadFile(dec)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("%s: decrypted file differs", method)
		}
	}
}

func TestProcessNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	enc := filepath.Join(dir, "cipher.bin")
	out := filepath.Join(dir, "plain.out")

	if err := os.WriteFile(enc, make([]byte, feistel.BlockSize+3), 0644); err != nil {
		t.Fatal(err)
	}

	err := runFile(t, "feistel", true, enc, out)
	if !errors.Is(err, feistel.ErrTruncatedInput) {
		t.Fatalf("decrypt error = %v, want ErrTruncatedInput", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output file exists after a failed run: %v", err)
	}

	if err := os.WriteFile(enc, []byte{1, 2}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := runFile(t, "vcrypt", true, enc, out); err == nil {
		t.Fatal("vcrypt decrypt of a 2 byte file should fail")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output file exists after a failed stream run: %v", err)
	}
}

func TestProcessMissingInput(t *testing.T) {
	dir := t.TempDir()
	if err := runFile(t, "feistel", false, filepath.Join(dir, "nope"), filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Fatalf("error = %v, want not exist", err)
	}
}

func TestPendingFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.bin")
	if err := os.WriteFile(out, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	pf, err := newPendingFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pf.Write([]byte("new")); err != nil {
		t.Fatal(err)
	}
	if got, _ := os.ReadFile(out); string(got) != "old" {
		t.Fatalf("target changed before commit: %q", got)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		t.Fatal(err)
	}
	pf.Cleanup()
	if got, _ := os.ReadFile(out); string(got) != "new" {
		t.Fatalf("target after commit = %q", got)
	}

	// an abandoned file leaves nothing behind
	pf, err = newPendingFile(filepath.Join(dir, "abandoned.bin"))
	if err != nil {
		t.Fatal(err)
	}
	pf.Write([]byte("partial"))
	pf.Cleanup()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.bin" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("directory holds %v, want only out.bin", names)
	}
}

func TestWriteFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.bin")
	if err := writeFile(out, []byte("data")); err != nil {
		t.Fatal(err)
	}
	if got, _ := os.ReadFile(out); string(got) != "data" {
		t.Fatalf("writeFile wrote %q", got)
	}
}
