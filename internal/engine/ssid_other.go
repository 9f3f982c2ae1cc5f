//go:build !linux

package engine

type ioctlSSIDResolver struct{}

func (ioctlSSIDResolver) Resolve(string) string { return "" }
