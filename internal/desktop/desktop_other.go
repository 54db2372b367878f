//go:build !windows && !linux

package desktop

func newPlatformProvider() (Provider, error) {
	return nil, ErrUnsupported
}
