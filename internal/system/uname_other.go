//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package system

// kernelBuildVersion has no uname here; callers fall back to the platform version
func kernelBuildVersion() (string, error) {
	return "", nil
}
