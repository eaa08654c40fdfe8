// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/medvision/internal/flow"
	"github.com/pdiddy/medvision/internal/render"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show service health and knowledge-base indexing progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession(cmd)
		defer s.Close()

		c := flow.NewStatus(s.client, s.opts)
		return runFlow(cmd, s, c, flow.StatusInput{}, "Checking "+s.client.BaseURL()+"...", render.System)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
