package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-rpg/internal/config"
	"github.com/annel0/voxel-rpg/internal/craft"
	"github.com/annel0/voxel-rpg/internal/eventbus"
	"github.com/annel0/voxel-rpg/internal/logging"
	"github.com/annel0/voxel-rpg/internal/storage"
	"github.com/annel0/voxel-rpg/internal/world"
	"github.com/annel0/voxel-rpg/internal/world/entity"

	// Регистрация поведений блоков
	_ "github.com/annel0/voxel-rpg/internal/world/block/implementations"
)

func main() {
	configPath := flag.String("config", "", "путь к файлу конфигурации YAML")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("Запуск воксельного игрового сервера...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("Ошибка чтения конфигурации: %v", err)
		log.Fatalf("Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		logging.Info("Файл конфигурации не задан, используются значения по умолчанию")
		cfg = config.Default()
	}

	// === ШИНА СОБЫТИЙ ===
	bus := eventbus.NewMemoryBus(1024)
	eventbus.Init(bus)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Warn("Не удалось подписать журнальный слушатель: %v", err)
	}

	busMetrics := eventbus.NewMetricsExporter(bus)
	busMetrics.Start(10 * time.Second)
	defer busMetrics.Stop()

	// === ХРАНИЛИЩЕ ===
	dataPath := cfg.Server.GetDataPath()
	worldStorage, err := storage.NewWorldStorage(dataPath)
	if err != nil {
		logging.Error("Ошибка открытия хранилища мира: %v", err)
		log.Fatalf("Ошибка открытия хранилища мира: %v", err)
	}
	defer worldStorage.Close()

	// Проверяем совпадение сида с сохранённым миром
	if savedSeed, _, found, err := worldStorage.LoadWorldMeta(); err != nil {
		logging.Error("Ошибка чтения метаданных мира: %v", err)
	} else if found && savedSeed != cfg.World.Seed {
		logging.Warn("Сид конфигурации (%d) не совпадает с сохранённым миром (%d), используется сохранённый",
			cfg.World.Seed, savedSeed)
		cfg.World.Seed = savedSeed
	} else if !found {
		if err := worldStorage.SaveWorldMeta(cfg.World.Seed, cfg.World.SeaLevel); err != nil {
			logging.Error("Ошибка сохранения метаданных мира: %v", err)
		}
	}

	// === МИР ===
	worldManager := world.NewWorldManager(cfg.World, cfg.Generation, cfg.Server)
	worldManager.SetStore(worldStorage)

	// === СУЩНОСТИ ===
	entityManager := entity.NewEntityManager()
	entityManager.RegisterDefaultBehaviors()
	entityAPI := world.NewEntityAPI(worldManager, entityManager)
	worldManager.AddTickHook(func(dt float64) {
		entityManager.UpdateEntities(dt, entityAPI)
	})

	// === КРАФТ ===
	recipes := craft.NewRecipeRegistry()
	recipes.LoadFromConfig(cfg.Crafting)
	sharedInventory := craft.NewInventory()
	station := craft.NewCraftingStation(recipes, sharedInventory, cfg.Crafting.QueueCapacity)
	worldManager.AddTickHook(station.Update)

	// === МЕТРИКИ ===
	metricsPort := cfg.Server.GetMetricsPort()
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", metricsPort),
		Handler: metricsMux,
	}
	go func() {
		logging.Info("Метрики Prometheus: http://localhost:%d/metrics", metricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Ошибка сервера метрик: %v", err)
		}
	}()

	// === ИГРОВОЙ ЦИКЛ ===
	gameCtx, gameCancel := context.WithCancel(context.Background())
	gameDone := make(chan struct{})
	go func() {
		defer close(gameDone)
		worldManager.Run(gameCtx)
	}()

	logging.Info("Сервер запущен: сид=%d, тиков/с=%d, данные=%s",
		cfg.World.Seed, cfg.Server.GetTickRate(), dataPath)

	// Ждем сигнала для завершения
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("Получен сигнал %v, завершение работы...", sig)

	// === GRACEFUL SHUTDOWN ===
	gameCancel()
	select {
	case <-gameDone:
	case <-time.After(10 * time.Second):
		logging.Warn("Игровой цикл не завершился за отведённое время")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("Ошибка остановки сервера метрик: %v", err)
	}

	logging.Info("Сервер успешно остановлен")
}
