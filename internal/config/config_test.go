package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPath(t *testing.T) {
	os.Unsetenv("GAME_CONFIG")

	cfg, err := Load("")
	assert.NoError(t, err, "Отсутствие конфига не является ошибкой")
	assert.Nil(t, cfg, "Без пути и ENV должен вернуться nil")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err, "Несуществующий файл должен давать ошибку")
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte(`
server:
  tick_rate: 30
  metrics_port: 9999
world:
  seed: 777
  sea_level: 15
generation:
  noise_scale: 0.02
  biomes:
    - name: tundra
      surface_block: snow
      filler_block: dirt
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err, "Корректный YAML должен загружаться")
	assert.Equal(t, 30, cfg.Server.TickRate, "tick_rate должен читаться из файла")
	assert.Equal(t, int64(777), cfg.World.Seed, "Сид должен читаться из файла")
	assert.Equal(t, 15, cfg.World.SeaLevel, "Уровень моря должен читаться из файла")
	require.Len(t, cfg.Generation.Biomes, 1, "Биомы должны читаться из файла")
	assert.Equal(t, "tundra", cfg.Generation.Biomes[0].Name)
}

func TestDefaultConfigComplete(t *testing.T) {
	cfg := Default()

	assert.NotZero(t, cfg.World.MaxHeight, "Потолок мира должен быть задан")
	assert.NotEmpty(t, cfg.Generation.Biomes, "Биомы по умолчанию должны быть заданы")
	assert.NotEmpty(t, cfg.Generation.Ores, "Руды по умолчанию должны быть заданы")
	assert.NotEmpty(t, cfg.Generation.Trees, "Деревья по умолчанию должны быть заданы")
	assert.NotEmpty(t, cfg.Crafting.Recipes, "Рецепты по умолчанию должны быть заданы")

	for _, ore := range cfg.Generation.Ores {
		assert.Greater(t, ore.SpawnChance, 0.0, "Шанс руды должен быть положительным")
		assert.LessOrEqual(t, ore.MinDepth, ore.MaxDepth, "Диапазон глубин должен быть корректным")
	}
}

func TestEnvFallbacks(t *testing.T) {
	s := ServerConfig{}

	os.Unsetenv("GAME_METRICS_PORT")
	assert.Equal(t, 2112, s.GetMetricsPort(), "Без ENV должен использоваться порт по умолчанию")

	os.Setenv("GAME_METRICS_PORT", "9100")
	defer os.Unsetenv("GAME_METRICS_PORT")
	assert.Equal(t, 9100, s.GetMetricsPort(), "ENV должен переопределять значение по умолчанию")

	s.MetricsPort = 8080
	assert.Equal(t, 8080, s.GetMetricsPort(), "Конфиг должен иметь приоритет над ENV")

	assert.Equal(t, 20, s.GetTickRate(), "Частота тиков по умолчанию равна 20")
}
