package main

import (
	"github.com/grailbio/bioqc/cmd/bio-qc/cmd"
)

func main() {
	cmd.Run()
}
