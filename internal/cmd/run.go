package cmd

import (
	"github.com/NearNodeFlash/switchtec-user-go/pkg/switchtec"
)

func run(device string, f func(*switchtec.Device) error) error {
	dev, err := switchtec.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	return f(dev)
}
