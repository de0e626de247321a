package main

import (
	"time"

	"github.com/fcrypt/fcrypt/cipher"
	"github.com/fcrypt/fcrypt/feistel"
	"github.com/fcrypt/fcrypt/pkg/log"
)

var version = "0.1.0"

func main() {
	config := parseConfig()

	if config.Workers > 0 {
		feistel.SetWorkers(config.Workers)
	}

	c, err := cipher.PickCipher(config.Method, config.Password)
	if err != nil {
		log.Fatalf("[%s] %s", config.Method, err)
	}

	start := time.Now()
	if err := process(c, config); err != nil {
		log.Fatalf("[%s] %s %s: %s", config.Method, config.mode(), config.Input, err)
	}
	log.F("[%s] %s %s -> %s, %s", config.Method, config.mode(), config.Input, config.Output, time.Since(start))
}
