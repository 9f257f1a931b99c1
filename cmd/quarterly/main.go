package main

import (
	"os"

	"github.com/BerniceZTT/mentorship_analytics/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		utils.Logger.Error().Err(err).Msg("命令执行失败")
		os.Exit(1)
	}
}
