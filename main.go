package main

import (
	"github.com/ember-lang/ember/cmd/ember"
)

func main() {
	cmd.Execute()
}
