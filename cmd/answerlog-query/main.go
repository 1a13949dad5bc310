// Command answerlog-query evaluates selection queries against a remote answer log
package main

import (
	"os"

	"answerlog/internal/platform/logger"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("answerlog-query failed")
		os.Exit(1)
	}
}
