package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-calc-api/internal/api"
	"github.com/vfg2006/seller-calc-api/internal/app"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/scheduler"
	"github.com/vfg2006/seller-calc-api/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := app.Build(ctx, cfg)
	defer deps.Close()

	refreshService := scheduler.NewExchangeRateRefreshService(deps.Cache, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de cotações")
	} else {
		logrus.Info("Agendador de atualização de cotações iniciado com sucesso")
	}

	server, err := api.New(cfg, deps.Cache, refreshService, deps.Metrics, deps.Registry)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
