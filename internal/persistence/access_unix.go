//go:build unix

package persistence

import (
	"golang.org/x/sys/unix"
)

func checkReadable(path string) error {
	return unix.Access(path, unix.R_OK)
}
