package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Slice    bool
	Optimize bool
	Policy   bool
	Render   bool
	Source   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Slice = boolEnv("SCOREX_DEBUG_SLICE")
	d.Optimize = boolEnv("SCOREX_DEBUG_OPTIMIZE")
	d.Policy = boolEnv("SCOREX_DEBUG_POLICY")
	d.Render = boolEnv("SCOREX_DEBUG_RENDER")
	d.Source = boolEnv("SCOREX_DEBUG_SOURCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Slice() bool {
	return d.Slice
}
func Optimize() bool {
	return d.Optimize
}
func Policy() bool {
	return d.Policy
}
func Render() bool {
	return d.Render
}
func Source() bool {
	return d.Source
}
