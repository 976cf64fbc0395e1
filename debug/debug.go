package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge  bool
	Events bool
	Bridge bool
	Store  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("NEST_DEBUG_MERGE")
	d.Events = boolEnv("NEST_DEBUG_EVENTS")
	d.Bridge = boolEnv("NEST_DEBUG_BRIDGE")
	d.Store = boolEnv("NEST_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Events() bool {
	return d.Events
}
func Bridge() bool {
	return d.Bridge
}
func Store() bool {
	return d.Store
}
