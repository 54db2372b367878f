package cmd

import "errors"

func Daemonize() (bool, func(), error) {
	return false, nil, errors.New("background mode is not supported on windows, use a scheduled task instead")
}

func InBackground() bool { return false }
