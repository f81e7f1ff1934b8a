package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/FentusGames/StockPile/internal/agent"
	"github.com/FentusGames/StockPile/internal/catalog"
	"github.com/FentusGames/StockPile/internal/engine"
	"github.com/FentusGames/StockPile/internal/version"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env до логгера: там LOG_LEVEL / LOG_FORMAT
	envErr := godotenv.Load()
	logger.Init()
	if envErr != nil {
		logger.Log.Debug(".env not found, using process environment")
	}

	// 1. Флаги
	var configPath, scenarioPath string
	var ticks int
	var quiet bool
	flag.StringVar(&configPath, "config", "", "Path to bot config YAML (overrides scenario config)")
	flag.StringVar(&scenarioPath, "scenario", "scenarios/goblins.yaml", "Path to scenario YAML")
	flag.IntVar(&ticks, "ticks", 0, "Override scenario tick count")
	flag.BoolVar(&quiet, "quiet", false, "Do not print the key/command transcript")
	flag.Parse()

	build := version.Current()
	logger.Log.WithFields(build.Fields()).Info("Starting StockPile simulator")

	// 2. Сценарий
	scenario, err := agent.LoadScenario(scenarioPath)
	if err != nil {
		logger.Log.Fatal("Failed to load scenario: ", err)
	}
	if ticks > 0 {
		scenario.Ticks = ticks
	}

	// 3. Конфиг бота: без файла работаем на значениях по умолчанию
	if configPath == "" {
		configPath = scenario.Config
	}
	cfg := engine.DefaultConfig()
	if configPath != "" {
		if cfg, err = engine.LoadConfig(configPath); err != nil {
			logger.Log.WithError(err).Warn("Using default config")
		}
	}
	logger.SetDebug(cfg.Debug)

	// 4. Каталог зон (необязателен)
	var provider engine.CatalogProvider
	if cfg.ZoneTable != "" {
		table, err := catalog.LoadZoneTable(cfg.ZoneTable)
		if err != nil {
			logger.Log.WithError(err).Warn("Zone table unavailable, catalog disabled")
		} else {
			provider = catalog.NewProvider(table)
		}
	}

	var transcript func(tick int, line string)
	if !quiet {
		transcript = func(tick int, line string) {
			fmt.Printf("%05d %s\n", tick, line)
		}
	}

	// 5. Прогон
	sim := agent.NewSimulation(scenario, cfg, provider, transcript)
	res := sim.Run()

	fmt.Println()
	fmt.Printf("Scenario: %s\n", scenario.Name)
	fmt.Printf("Ticks: %d  Kills: %d  Commands: %d  Key presses: %d\n", res.Ticks, res.Kills, res.Commands, res.KeyDowns)
	for _, line := range res.Status.Lines() {
		fmt.Println(line)
	}
	if names := sim.Engine().CatalogNames(); len(names) > 0 {
		fmt.Printf("Zone catalog: %v\n", names)
	}

	if res.Kills == 0 && len(scenario.Mobs) > 0 {
		os.Exit(1)
	}
}
