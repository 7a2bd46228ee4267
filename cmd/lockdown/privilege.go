package main

import (
	"fmt"
	"os"
)

// euid is swappable for tests.
var euid = os.Geteuid

// requireRoot aborts the run before any prompt or mutation when the
// process lacks administrative privilege. Every step writes to system
// paths or drives system tools, so a non-root run can only fail late
// and messily.
func requireRoot() error {
	if euid() != 0 {
		return fmt.Errorf("lockdown must run as root (effective uid %d)", euid())
	}
	return nil
}
