package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации сервера.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
	Crafting   CraftingConfig   `yaml:"crafting"`
}

type ServerConfig struct {
	TickRate        int    `yaml:"tick_rate"`        // Тиков в секунду
	MetricsPort     int    `yaml:"metrics_port"`     // Порт Prometheus метрик
	DataPath        string `yaml:"data_path"`        // Директория данных мира
	AutosaveMinutes int    `yaml:"autosave_minutes"` // Период автосохранения
}

type WorldConfig struct {
	Seed      int64 `yaml:"seed"`
	SeaLevel  int   `yaml:"sea_level"`  // Ниже этой высоты пустоты заполняются водой
	MinHeight int   `yaml:"min_height"` // Нижняя граница мира (в блоках)
	MaxHeight int   `yaml:"max_height"` // Верхняя граница мира (в блоках)
}

// GenerationConfig содержит статические параметры генерации.
// Все вероятности — от 0 до 1; имена блоков резолвятся через регистр
// на старте генератора (неизвестное имя логируется и пропускается).
type GenerationConfig struct {
	NoiseScale    float64           `yaml:"noise_scale"`    // Масштаб основного шума (высота)
	BiomeScale    float64           `yaml:"biome_scale"`    // Масштаб шума биомов
	BaseHeight    int               `yaml:"base_height"`    // Базовая высота поверхности
	HeightRange   int               `yaml:"height_range"`   // Амплитуда рельефа
	MountainBoost int               `yaml:"mountain_boost"` // Доп. высота в горных биомах
	DirtDepth     int               `yaml:"dirt_depth"`     // Толщина слоя наполнителя до камня
	Biomes        []BiomeDefinition `yaml:"biomes"`
	Ores          []OreConfig       `yaml:"ores"`
	Trees         []TreeType        `yaml:"trees"`
}

// BiomeDefinition описывает поверхностные блоки и растительность биома
type BiomeDefinition struct {
	Name         string  `yaml:"name"`
	SurfaceBlock string  `yaml:"surface_block"` // Верхний блок столбца
	FillerBlock  string  `yaml:"filler_block"`  // Блок между поверхностью и камнем
	TreeChance   float64 `yaml:"tree_chance"`   // Шанс дерева на столбец поверхности
	BushChance   float64 `yaml:"bush_chance"`   // Шанс куста на столбец поверхности
}

// OreConfig описывает параметры размещения руды
type OreConfig struct {
	Block       string  `yaml:"block"`        // Имя блока руды
	SpawnChance float64 `yaml:"spawn_chance"` // Доля кандидатов, становящихся рудой
	NoiseScale  float64 `yaml:"noise_scale"`  // Масштаб шума жил
	MinDepth    int     `yaml:"min_depth"`    // Верх диапазона (блоков ниже поверхности)
	MaxDepth    int     `yaml:"max_depth"`    // Низ диапазона
}

// TreeType описывает вид дерева
type TreeType struct {
	Name       string `yaml:"name"`
	TrunkBlock string `yaml:"trunk_block"`
	LeafBlock  string `yaml:"leaf_block"`
	MinHeight  int    `yaml:"min_height"` // Минимальная высота ствола
	MaxHeight  int    `yaml:"max_height"` // Максимальная высота ствола
	LeafRadius int    `yaml:"leaf_radius"`
	Weight     int    `yaml:"weight"` // Относительный вес при выборе вида
}

// CraftingConfig содержит рецепты крафта
type CraftingConfig struct {
	QueueCapacity int            `yaml:"queue_capacity"` // Вместимость очереди станции
	Recipes       []RecipeConfig `yaml:"recipes"`
}

// RecipeConfig описывает один рецепт
type RecipeConfig struct {
	ID           string         `yaml:"id"`
	Inputs       map[string]int `yaml:"inputs"` // Предмет -> количество
	Output       string         `yaml:"output"`
	OutputCount  int            `yaml:"output_count"`
	CraftSeconds float64        `yaml:"craft_seconds"`
}

// GetMetricsPort возвращает порт метрик с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "GAME_METRICS_PORT", 2112)
}

// GetDataPath возвращает директорию данных с приоритетом: config -> env -> default
func (s *ServerConfig) GetDataPath() string {
	if s.DataPath != "" {
		return s.DataPath
	}
	if envVal := os.Getenv("GAME_DATA_PATH"); envVal != "" {
		return envVal
	}
	return "data"
}

// GetTickRate возвращает частоту тиков (по умолчанию 20)
func (s *ServerConfig) GetTickRate() int {
	if s.TickRate > 0 {
		return s.TickRate
	}
	return 20
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV GAME_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default возвращает конфигурацию по умолчанию — полный набор биомов,
// руд и деревьев, чтобы сервер поднимался без файла конфигурации.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			TickRate:        20,
			AutosaveMinutes: 5,
		},
		World: WorldConfig{
			Seed:      1,
			SeaLevel:  20,
			MinHeight: 0,
			MaxHeight: 128,
		},
		Generation: GenerationConfig{
			NoiseScale:    0.01,
			BiomeScale:    0.003,
			BaseHeight:    24,
			HeightRange:   28,
			MountainBoost: 24,
			DirtDepth:     4,
			Biomes: []BiomeDefinition{
				{Name: "plains", SurfaceBlock: "grass", FillerBlock: "dirt", TreeChance: 0.01, BushChance: 0.03},
				{Name: "forest", SurfaceBlock: "grass", FillerBlock: "dirt", TreeChance: 0.08, BushChance: 0.02},
				{Name: "desert", SurfaceBlock: "sand", FillerBlock: "sand", TreeChance: 0, BushChance: 0.005},
				{Name: "mountains", SurfaceBlock: "stone", FillerBlock: "stone", TreeChance: 0.002, BushChance: 0},
			},
			Ores: []OreConfig{
				{Block: "coal_ore", SpawnChance: 0.10, NoiseScale: 0.09, MinDepth: 4, MaxDepth: 48},
				{Block: "iron_ore", SpawnChance: 0.06, NoiseScale: 0.08, MinDepth: 12, MaxDepth: 64},
				{Block: "gold_ore", SpawnChance: 0.02, NoiseScale: 0.07, MinDepth: 28, MaxDepth: 96},
			},
			Trees: []TreeType{
				{Name: "oak", TrunkBlock: "log", LeafBlock: "leaves", MinHeight: 3, MaxHeight: 5, LeafRadius: 2, Weight: 3},
				{Name: "tall_oak", TrunkBlock: "log", LeafBlock: "leaves", MinHeight: 5, MaxHeight: 7, LeafRadius: 2, Weight: 1},
			},
		},
		Crafting: CraftingConfig{
			QueueCapacity: 8,
			Recipes: []RecipeConfig{
				{ID: "planks", Inputs: map[string]int{"log": 1}, Output: "planks", OutputCount: 4, CraftSeconds: 1},
				{ID: "torch", Inputs: map[string]int{"coal": 1, "stick": 1}, Output: "torch", OutputCount: 4, CraftSeconds: 1.5},
				{ID: "iron_ingot", Inputs: map[string]int{"iron_ore": 1, "coal": 1}, Output: "iron_ingot", OutputCount: 1, CraftSeconds: 4},
				{ID: "iron_sword", Inputs: map[string]int{"iron_ingot": 2, "stick": 1}, Output: "iron_sword", OutputCount: 1, CraftSeconds: 6},
			},
		},
	}
}
