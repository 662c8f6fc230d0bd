//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the game window.
func (Run) Window() error {
	fmt.Println("Run breakout...")
	_, err := executeCmd("go", withArgs("run", "./cmd/breakout", "play"), withStream())
	return err
}

// Opens the game window with the debug overlay.
func (Run) Debug() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/breakout", "play", "--debug"), withStream())
	return err
}

// Plays in the terminal.
func (Run) Terminal() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/breakout", "tui"), withStream())
	return err
}

// Runs one minute of headless autopilot play.
func (Run) Simulate() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/breakout", "simulate", "--ticks", "3600"), withStream())
	return err
}
