//go:build !unix

package meta

import "os"

// ownership has no portable implementation outside unix; the long format
// renders empty owner and group columns there.
func ownership(os.FileInfo) (owner, group string) {
	return "", ""
}
