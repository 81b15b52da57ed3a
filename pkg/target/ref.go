// SPDX-License-Identifier: MPL-2.0

package target

import (
	"fmt"
	"strings"
)

// Ref identifies a registered target by container and member name,
// parsed from a dotted path such as "main.app" or "api.handlers.notify".
type Ref struct {
	// Container is everything before the last dot (e.g. "api.handlers").
	Container string
	// Member is the name after the last dot (e.g. "notify").
	Member string
}

// ParseRef splits a dotted path on its LAST separator, mirroring the
// container/member split of a dynamic import path. Both halves must be
// non-empty: "app", ".app" and "main." are all rejected.
func ParseRef(path string) (Ref, error) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return Ref{}, fmt.Errorf("invalid target path %q: expected \"container.member\"", path)
	}

	ref := Ref{Container: path[:idx], Member: path[idx+1:]}
	if ref.Container == "" || ref.Member == "" {
		return Ref{}, fmt.Errorf("invalid target path %q: container and member must be non-empty", path)
	}

	return ref, nil
}

// String returns the dotted form of the reference.
func (r Ref) String() string {
	return r.Container + "." + r.Member
}
