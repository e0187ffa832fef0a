//go:build dockdebug

package dock

import "fmt"

func assertf(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("dock: invariant violated: "+format, args...))
	}
}
