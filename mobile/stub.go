//go:build !mobile

// Package mobile 的桌面端占位，真正的入口在 mobile.go（-tags mobile）
package mobile

// Dummy 保证包在普通构建时也可被引用
func Dummy() {}
