//go:build tools
// +build tools

package activity

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
