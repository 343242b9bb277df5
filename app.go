package main

import (
	"fmt"
	"github.com/faiface/mainthread"
	"github.com/memmaker/xsection/client"
	"github.com/memmaker/xsection/engine/util"
	"github.com/memmaker/xsection/game"
)

func runDemo() error {
	config := game.DefaultConfig()
	scene := game.NewScene(config)

	var xsectionClient *client.XSectionClient
	err := mainthread.CallErr(func() error {
		var err error
		xsectionClient, err = client.NewXSectionClient(config, scene)
		return err
	})
	if err != nil {
		return err
	}

	util.LogSystemInfo(fmt.Sprintf("[Main] %s running at %dx%d", config.Title, config.WindowWidth, config.WindowHeight))
	xsectionClient.Run()
	if overruns := scene.Player().CorrectionOverruns; overruns > 0 {
		util.LogPhysicsError(fmt.Sprintf("[Main] player correction overran %d times", overruns))
	}
	return nil
}
