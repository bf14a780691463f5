package main

import (
	"os"
	"runtime/pprof"

	log "github.com/sirupsen/logrus"

	"github.com/Jackson-Benz/Dark-Matter-Nucleus-Capture/internal/dmnc"
)

func main() {
	dmnc.Debug = os.Getenv("DEBUG") != ""
	if dmnc.Debug {
		log.SetLevel(log.DebugLevel)
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "configs/run.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := dmnc.Run(cfg); err != nil {
		log.WithError(err).Error("simulation failed")
		os.Exit(1)
	}
}
