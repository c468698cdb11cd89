//go:build !unix

package hooks

const nonBlockFlag = 0

func isNoReader(error) bool { return false }
