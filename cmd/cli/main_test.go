package main

import (
	"os"
	"testing"
)

func TestAppStarts(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"devspace", "help"}
	main()
}
