package project

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/node-headers/node-headers-cli/cli/context"
)

// RemoveStagingDir removes headers staging directory.
// Missed directory isn't an error
func RemoveStagingDir(ctx *context.Ctx) error {
	path := ctx.Headers.StagingDir

	if err := CheckStagingDir(ctx); err != nil {
		return err
	}

	if _, err := os.Lstat(path); os.IsNotExist(err) {
		log.Warnf("Staging directory %s doesn't exist", path)
		return nil
	} else if err != nil {
		return fmt.Errorf("Unable to use staging directory %s: %s", path, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("Failed to remove staging directory: %s", err)
	}

	log.Infof("Staging directory %s is removed", path)

	return nil
}
