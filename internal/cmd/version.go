package cmd

import (
	"fmt"

	"github.com/afiqzx/routegen/internal/codegen/common"
)

// Version prints the build version.
type Version struct{}

func (v *Version) Run() error {
	version, err := common.GetVersion()
	if err != nil {
		return err
	}
	fmt.Println("routegen " + version)
	return nil
}
