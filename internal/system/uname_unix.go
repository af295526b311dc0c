//go:build linux || darwin || freebsd || netbsd || openbsd

package system

import "golang.org/x/sys/unix"

// kernelBuildVersion returns the kernel build string, as `uname -v` prints it
func kernelBuildVersion() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Version[:]), nil
}
