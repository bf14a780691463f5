//go:build !debug
// +build !debug

package dmnc

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
