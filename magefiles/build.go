//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds the breakout binary into bin/.
func (Build) Binary() error {
	return sh.RunV("go", "build", "-o", "bin/breakout", "./cmd/breakout")
}

// Runs go mod tidy and go vet.
func (Build) Check() error {
	if _, err := executeCmd("go", withArgs("mod", "tidy")); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
