package main

import (
	"build"

	buildsystem "github.com/outofforest/build/v2"
	"github.com/outofforest/build/v2/pkg/tools/git"
	"github.com/outofforest/tools"
	"github.com/outofforest/tools/pkg/tools/golang"
)

func main() {
	buildsystem.RegisterCommands(
		build.Commands,
		git.Commands,
		golang.Commands,
	)
	tools.Main()
}
