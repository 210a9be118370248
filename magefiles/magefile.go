//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "lernhelfer"

// Build compiles the lernhelfer binary into ./bin.
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binaryName), "./cmd/lernhelfer")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.Deps(Vet, Test)
}

// Install builds and installs the binary into GOBIN.
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", "./cmd/lernhelfer")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Removing bin/")
	return os.RemoveAll("bin")
}
