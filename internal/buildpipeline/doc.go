// Package buildpipeline defines the progress protocol between the build
// driver and its observers (the terminal UI, tests).
package buildpipeline
