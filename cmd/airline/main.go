package main

import (
	"os"

	"airline-reservation/internal/command"
	"airline-reservation/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	defer logger.L.Sync()

	// cli.Exit 錯誤由 app 自己處理（印訊息並帶 exit code 結束）
	if err := command.NewApp().Run(os.Args); err != nil {
		logger.WithComponent("main").Fatal("command failed", zap.Error(err))
	}
}
