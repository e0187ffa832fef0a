//go:build !dockdebug

package dock

import "github.com/rs/zerolog/log"

// assertf reports a broken engine invariant. Release builds log it; build
// with -tags dockdebug to panic instead.
func assertf(ok bool, format string, args ...any) {
	if ok {
		return
	}
	log.Error().Str("component", "dock").Msgf("invariant violated: "+format, args...)
}
