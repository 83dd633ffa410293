package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/ttt/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath
		}
		if err := config.Init(path); err != nil {
			fail("failed to write config file", err)
		}
		fmt.Printf("Configuration file created: %s\n", path)
	},
}
