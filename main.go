package main

import (
	"fmt"
	"github.com/faiface/mainthread"
	"github.com/memmaker/xsection/engine/util"
	"os"
)

func main() {
	exitCode := 0
	mainthread.Run(func() {
		if err := runDemo(); err != nil {
			util.LogSystemError(fmt.Sprintf("[Main] %+v", err))
			exitCode = 1
		}
	})
	os.Exit(exitCode)
}
