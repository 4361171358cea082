package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/quest/packages/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAndLoadConfig_Defaults(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultQuestFile, cfg.QuestFile)
	assert.Equal(t, DefaultEnvFile, cfg.EnvFile)
	assert.True(t, cfg.GetFollowRedirects())
	assert.False(t, cfg.GetNoColor())
	assert.False(t, cfg.GetGzip())
	assert.Equal(t, DefaultMaxRedirects, cfg.MaxRedirects)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, d)
}

func TestDefaultConfig_MatchesClientDefaults(t *testing.T) {
	cfg := DefaultConfig()

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, http.DefaultTimeout, d)
	assert.Equal(t, http.DefaultMaxRedirects, cfg.MaxRedirects)
}

func TestFindAndLoadConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	content := `{"file": "api.quests", "timeout": "5s", "gzip": true, "no_color": true}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quest.config.json"), []byte(content), 0644))

	cfg, err := FindAndLoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "api.quests", cfg.QuestFile)
	assert.Equal(t, DefaultEnvFile, cfg.EnvFile)
	assert.True(t, cfg.GetGzip())
	assert.True(t, cfg.GetNoColor())

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "env_file: secrets.env\nfollow_redirects: false\nmax_redirects: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "secrets.env", cfg.EnvFile)
	assert.False(t, cfg.GetFollowRedirects())
	assert.Equal(t, 3, cfg.MaxRedirects)
}

func TestLoadConfig_ExtensionlessIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".questrc")
	require.NoError(t, os.WriteFile(path, []byte(`{"brotli": true}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.GetBrotli())
}

func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("QUEST_TIMEOUT", "2m")
	t.Setenv("QUEST_NO_COLOR", "true")
	t.Setenv("QUEST_FILE", "from-env.quests")

	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "from-env.quests", cfg.QuestFile)
	assert.True(t, cfg.GetNoColor())
	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"timeout": "soon"}`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "", want: DefaultTimeout},
		{in: "30", want: 30 * time.Second},
		{in: "0", want: 0},
		{in: "1m30s", want: 90 * time.Second},
		{in: "250ms", want: 250 * time.Millisecond},
		{in: "-1", wantErr: true},
		{in: "-5s", wantErr: true},
		{in: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeout(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()

	t.Run("nil other", func(t *testing.T) {
		assert.Same(t, base, base.Merge(nil))
	})

	t.Run("only set fields override", func(t *testing.T) {
		merged := base.Merge(&Config{
			Timeout: "10",
			Gzip:    BoolPtr(true),
		})

		assert.Equal(t, "10", merged.Timeout)
		assert.True(t, merged.GetGzip())
		assert.Equal(t, DefaultQuestFile, merged.QuestFile)
		assert.True(t, merged.GetFollowRedirects())
		assert.False(t, base.GetGzip(), "base must not change")
	})

	t.Run("explicit false overrides true", func(t *testing.T) {
		merged := base.Merge(&Config{FollowRedirects: BoolPtr(false)})
		assert.False(t, merged.GetFollowRedirects())
	})
}
