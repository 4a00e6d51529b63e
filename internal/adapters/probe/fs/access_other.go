//go:build !unix

package fs

func writable(string) bool {
	return false
}
