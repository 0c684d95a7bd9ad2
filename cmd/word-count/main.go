package main

import (
	"os"

	"github.com/hyp3rd/textstats"
	"github.com/hyp3rd/textstats/internal/command"
)

func main() {
	os.Exit(command.Execute(command.New(textstats.ToolWordCount)))
}
