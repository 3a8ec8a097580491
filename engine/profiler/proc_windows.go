//go:build profile && windows

package profiler

import "syscall"

func viewerProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true}
}
