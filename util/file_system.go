package util

import (
	"os"
)

var Fs FileSystem = osFS{}

//go:generate mockgen -destination mocks/mock_filesystem.go -package mock_util github.com/gjutils/gjutil/util FileSystem
type FileSystem interface {
	Remove(name string) error
}

type osFS struct{}

func (osFS) Remove(name string) error { return os.Remove(name) }
