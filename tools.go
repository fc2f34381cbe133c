//go:build tools
// +build tools

// Package tools pins mockgen, which regenerates mocks/ from contract.go
// through go generate. Nothing here is compiled into the viewer.
package planning_poker

import (
	_ "go.uber.org/mock/mockgen"
)
