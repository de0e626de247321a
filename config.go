package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nadoo/conflag"

	"github.com/fcrypt/fcrypt/cipher"
	"github.com/fcrypt/fcrypt/pkg/log"
)

var flag = conflag.New()

// Config is global config struct.
type Config struct {
	Verbose  bool
	LogFlags int

	Method  string
	Workers int

	Encrypt  bool
	Decrypt  bool
	Password string

	Input  string
	Output string
}

func parseConfig() *Config {
	conf := &Config{}

	flag.SetOutput(os.Stdout)

	list := flag.Bool("list", false, "list available methods")
	example := flag.Bool("example", false, "show usage examples")

	flag.BoolVar(&conf.Verbose, "verbose", false, "verbose mode")
	flag.IntVar(&conf.LogFlags, "logflags", 19, "do not change it if you do not know what it is, ref: https://pkg.go.dev/log#pkg-constants")
	flag.StringVar(&conf.Method, "method", cipher.DefaultMethod, "cipher method, see -list")
	flag.IntVar(&conf.Workers, "workers", 0, "goroutines used by the feistel block engine, 0: number of cpus")
	flag.BoolVar(&conf.Encrypt, "e", false, "encrypt INPUT into OUTPUT")
	flag.BoolVar(&conf.Decrypt, "d", false, "decrypt INPUT into OUTPUT")
	flag.StringVar(&conf.Password, "password", "", "password, taken from the first argument when not set")

	flag.Usage = usage
	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(2)
	}
	if err := flag.Parse(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(2)
	}

	if *list {
		fmt.Fprintln(flag.Output(), cipher.ListCipher())
		os.Exit(0)
	}

	if *example {
		fmt.Fprint(flag.Output(), examples)
		os.Exit(0)
	}

	// setup logger
	log.Set(conf.Verbose, conf.LogFlags)

	if err := conf.resolveArgs(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		flag.Usage()
		os.Exit(2)
	}

	return conf
}

// resolveArgs checks the mode and fills password and paths from the
// positional arguments: [PASSWORD] INPUT OUTPUT.
func (conf *Config) resolveArgs(args []string) error {
	if conf.Encrypt == conf.Decrypt {
		return fmt.Errorf("exactly one of -e and -d must be specified")
	}

	// a password set in the config file or by flag leaves only the paths
	want := 3
	if conf.Password != "" {
		want = 2
	}
	if len(args) != want {
		return fmt.Errorf("expected %d arguments, got %d", want, len(args))
	}
	if want == 3 {
		conf.Password, args = args[0], args[1:]
	}

	conf.Input, conf.Output = args[0], args[1]
	if filepath.Clean(conf.Input) == filepath.Clean(conf.Output) {
		return fmt.Errorf("input and output must be different files")
	}
	return nil
}

func (conf *Config) mode() string {
	if conf.Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

func usage() {
	fmt.Fprint(flag.Output(), usage1)
	flag.PrintDefaults()
	fmt.Fprintf(flag.Output(), usage2, version)
}

var usage1 = `
Usage: fcrypt [OPTION]... -e|-d PASSWORD INPUT OUTPUT

  e.g. fcrypt -e secret plain.txt cipher.bin
       fcrypt -d -method vcrypt secret cipher.bin plain.txt

OPTION:
`

var usage2 = `
Methods:
   feistel (default): 128-bit Feistel network, 10 rounds, raw 16-byte blocks, no header.
   scrypt           : lcg byte stream, no header.
   vcrypt           : lcg byte stream with a random 8-byte IV header.
   others           : see 'fcrypt -list'.

Config file:
   every option may be given as KEY=VALUE, one per line, in a file passed with -config.

--
fcrypt %s
`

var examples = `
Examples:
  fcrypt -e test plain.txt cipher.bin
    -encrypt plain.txt with the feistel cipher.

  fcrypt -d test cipher.bin plain.txt
    -decrypt it again; fails without writing plain.txt if the password or file is wrong.

  fcrypt -e -method scrypt test plain.txt cipher.bin
    -xor plain.txt with the scrypt keystream.

  fcrypt -e -workers 8 -verbose test big.iso big.iso.fc
    -encrypt a large file with 8 block workers, in verbose mode.

  fcrypt -config fcrypt.conf -d cipher.bin plain.txt
    -read method and password from fcrypt.conf.
`
