//go:build unix

package meta

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
)

// Numeric-id lookups dominate large listings, so resolved names are cached
// for the lifetime of the process.
var (
	userNames  = map[uint32]string{}
	groupNames = map[uint32]string{}
)

// ownership resolves the owner and group names for info. Unresolvable ids
// fall back to their numeric form, matching ls.
func ownership(info os.FileInfo) (owner, group string) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", ""
	}
	return userName(stat.Uid), groupName(stat.Gid)
}

func userName(uid uint32) string {
	if name, ok := userNames[uid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}
	userNames[uid] = name
	return name
}

func groupName(gid uint32) string {
	if name, ok := groupNames[gid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil {
		name = g.Name
	}
	groupNames[gid] = name
	return name
}
