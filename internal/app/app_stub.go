//go:build !ebiten

package app

import "github.com/pkg/errors"

// Run is unavailable without the ebiten build tag.
func Run(*Config) error {
	return errors.New("window mode requires the ebiten build tag; rebuild with -tags ebiten")
}
